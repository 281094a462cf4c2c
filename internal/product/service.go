package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog, optionally restricted to one category.
// "all" and the empty string return everything.
func (s *Service) List(category string) []Product {
	products := s.repo.List()
	if category == "" || category == "all" {
		return products
	}
	return Filter(products, Criteria{Category: category})
}

// Browse applies the full filter criteria and sort key over the catalog.
func (s *Service) Browse(c Criteria, sortKey string) []Product {
	return Sort(Filter(s.repo.List(), c), sortKey)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	p.Normalize()
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	p.Normalize()
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// CountByCategory reports how many products reference the given category.
// The category service uses it to block deleting categories still in use.
func (s *Service) CountByCategory(category string) int {
	count := 0
	for _, p := range s.repo.List() {
		if p.Category == category {
			count++
		}
	}
	return count
}
