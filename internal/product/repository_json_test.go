package product

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

func TestJSONRepository_SeedsOnFirstBoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")

	repo, err := NewJSONRepository(jsonstore.NewFile(path), DefaultCatalog())
	require.NoError(t, err)
	assert.Len(t, repo.List(), len(DefaultCatalog()))

	// A second open reads the written file instead of re-seeding.
	again, err := NewJSONRepository(jsonstore.NewFile(path), nil)
	require.NoError(t, err)
	assert.Equal(t, repo.List(), again.List())
}

func TestJSONRepository_MutationsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	file := jsonstore.NewFile(path)

	repo, err := NewJSONRepository(file, nil)
	require.NoError(t, err)

	created, err := repo.Create(Product{Name: "Puma Future Ultimate", Price: 3999, Category: "boots", Stock: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	created.Price = 3499
	_, err = repo.Update(created.ID, created)
	require.NoError(t, err)

	reopened, err := NewJSONRepository(jsonstore.NewFile(path), nil)
	require.NoError(t, err)
	got, err := reopened.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3499, got.Price)

	require.NoError(t, repo.Delete(created.ID))
	reopened, err = NewJSONRepository(jsonstore.NewFile(path), nil)
	require.NoError(t, err)
	assert.Empty(t, reopened.List())
}

func TestJSONRepository_FailedLookups(t *testing.T) {
	repo, err := NewJSONRepository(jsonstore.NewFile(filepath.Join(t.TempDir(), "products.json")), nil)
	require.NoError(t, err)

	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Update(1, Product{Name: "x", Category: "boots"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(1), ErrNotFound)
}

func TestDefaultCatalog_SizeFlagConsistency(t *testing.T) {
	for _, p := range DefaultCatalog() {
		assert.Equal(t, len(p.Sizes) > 0, p.HasSizes, "product %d", p.ID)
	}
}
