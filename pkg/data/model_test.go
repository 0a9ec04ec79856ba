package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSale(t *testing.T) {
	full := Manga{ID: "m1", Price: 29.90}
	assert.False(t, full.OnSale())

	original := 39.90
	discounted := Manga{ID: "m2", Price: 29.90, OriginalPrice: &original}
	assert.True(t, discounted.OnSale())
}

func TestCategories(t *testing.T) {
	mangas := []Manga{
		{ID: "1", Genre: "Ação"},
		{ID: "2", Genre: "Romance"},
		{ID: "3", Genre: "Ação"},
		{ID: "4", Genre: ""},
	}

	categories := Categories(mangas)

	assert.Equal(t, []string{CategoryAll, "Ação", "Romance"}, categories)
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{CategoryAll}, Categories(nil))
}

func TestFilterByCategory(t *testing.T) {
	mangas := []Manga{
		{ID: "1", Genre: "Ação"},
		{ID: "2", Genre: "Romance"},
		{ID: "3", Genre: "Ação"},
	}

	assert.Len(t, FilterByCategory(mangas, CategoryAll), 3)
	assert.Len(t, FilterByCategory(mangas, "Ação"), 2)
	assert.Len(t, FilterByCategory(mangas, "Romance"), 1)
	assert.Empty(t, FilterByCategory(mangas, "Terror"))
}
