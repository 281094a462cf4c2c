package category

import "errors"

// ErrInUse is returned when deleting a category that products still reference.
var ErrInUse = errors.New("category is referenced by products")

// ProductCounter reports how many products reference a category slug.
// The product service satisfies it.
type ProductCounter interface {
	CountByCategory(category string) int
}

type Service struct {
	repo     Repository
	products ProductCounter
}

func NewService(repo Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) List() []Category {
	return s.repo.List()
}

// ListActive returns only the categories shown on the storefront.
func (s *Service) ListActive() []Category {
	active := make([]Category, 0)
	for _, cat := range s.repo.List() {
		if cat.IsActive {
			active = append(active, cat)
		}
	}
	return active
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(cat Category) (Category, error) {
	return s.repo.Create(cat)
}

func (s *Service) Update(id int, cat Category) (Category, error) {
	return s.repo.Update(id, cat)
}

// Delete removes a category unless a product still references its slug.
func (s *Service) Delete(id int) error {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s.products != nil && s.products.CountByCategory(cat.Name) > 0 {
		return ErrInUse
	}
	return s.repo.Delete(id)
}
