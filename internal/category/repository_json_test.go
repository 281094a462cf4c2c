package category

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

func TestJSONRepository_SlugUniqueness(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	repo, err := NewJSONRepository(jsonstore.NewFile(path), DefaultCategories())
	require.NoError(t, err)

	_, err = repo.Create(Category{Name: "boots", DisplayName: "Boots Again", IsActive: true})
	assert.ErrorIs(t, err, ErrNameExists)

	_, err = repo.Update(2, Category{Name: "jerseys", DisplayName: "Boots", IsActive: true})
	assert.ErrorIs(t, err, ErrNameExists)

	// The blocked rename must not reach the file either.
	reopened, err := NewJSONRepository(jsonstore.NewFile(path), nil)
	require.NoError(t, err)
	slugs := map[string]int{}
	for _, cat := range reopened.List() {
		slugs[cat.Name]++
	}
	assert.Equal(t, 1, slugs["jerseys"])
	assert.Equal(t, 1, slugs["boots"])

	// A category may keep its own slug on update.
	_, err = repo.Update(2, Category{Name: "boots", DisplayName: "Football Boots", IsActive: true})
	require.NoError(t, err)
}
