package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter maps category slug to the number of referencing products.
type fakeCounter map[string]int

func (f fakeCounter) CountByCategory(category string) int { return f[category] }

func TestDelete_BlockedWhileReferenced(t *testing.T) {
	repo := NewInMemoryRepository(DefaultCategories())
	svc := NewService(repo, fakeCounter{"boots": 2})

	err := svc.Delete(2) // boots
	assert.ErrorIs(t, err, ErrInUse)
	assert.Len(t, repo.List(), 4, "blocked delete leaves the store unchanged")

	require.NoError(t, svc.Delete(4)) // accessories, unreferenced
	assert.Len(t, repo.List(), 3)

	assert.ErrorIs(t, svc.Delete(99), ErrNotFound)
}

func TestCreate_RejectsDuplicateSlug(t *testing.T) {
	repo := NewInMemoryRepository(DefaultCategories())
	svc := NewService(repo, fakeCounter{})

	_, err := svc.Create(Category{Name: "boots", DisplayName: "Boots Again", IsActive: true})
	assert.ErrorIs(t, err, ErrNameExists)
	assert.Len(t, repo.List(), 4)

	created, err := svc.Create(Category{Name: "gloves", DisplayName: "Goalkeeper Gloves", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestUpdate_RejectsDuplicateSlug(t *testing.T) {
	repo := NewInMemoryRepository(DefaultCategories())
	svc := NewService(repo, fakeCounter{})

	// Renaming boots onto the jerseys slug would leave two categories
	// answering to "jerseys".
	_, err := svc.Update(2, Category{Name: "jerseys", DisplayName: "Boots", IsActive: true})
	assert.ErrorIs(t, err, ErrNameExists)

	slugs := map[string]int{}
	for _, cat := range repo.List() {
		slugs[cat.Name]++
	}
	assert.Equal(t, 1, slugs["jerseys"], "blocked rename leaves slugs unique")

	// Keeping its own slug while changing other fields is fine.
	updated, err := svc.Update(2, Category{Name: "boots", DisplayName: "Football Boots", IsActive: false})
	require.NoError(t, err)
	assert.Equal(t, "Football Boots", updated.DisplayName)
}

func TestListActive_HidesInactive(t *testing.T) {
	seed := DefaultCategories()
	seed[3].IsActive = false
	svc := NewService(NewInMemoryRepository(seed), fakeCounter{})

	assert.Len(t, svc.List(), 4)
	active := svc.ListActive()
	assert.Len(t, active, 3)
	for _, cat := range active {
		assert.True(t, cat.IsActive)
	}
}
