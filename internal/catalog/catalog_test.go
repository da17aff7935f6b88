package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesWellFormed(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	seen := map[string]bool{}
	for _, cat := range cats {
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Slug)
		assert.False(t, seen[cat.Slug], "duplicate category slug %s", cat.Slug)
		seen[cat.Slug] = true

		if len(cat.Subcategories) > 0 {
			assert.Empty(t, cat.Items, "category %s carries both items and subcategories", cat.Slug)
		}
		for _, sub := range cat.Subcategories {
			assert.NotEmpty(t, sub.Slug)
			assert.NotEmpty(t, sub.Items, "subcategory %s has no items", sub.Slug)
			for _, item := range sub.Items {
				assert.NotEmpty(t, item.Name)
				for _, opt := range item.LengthOptions {
					assert.True(t, strings.HasPrefix(opt.Price, "$"), "price %q missing currency", opt.Price)
					assert.Contains(t, opt.Notes, "deposit")
				}
			}
		}
	}
}

func TestGetCategory(t *testing.T) {
	cat, ok := GetCategory("box-braids")
	require.True(t, ok)
	assert.Equal(t, "Box Braids", cat.Name)

	_, ok = GetCategory("no-such-category")
	assert.False(t, ok)
}

func TestGetSubcategory(t *testing.T) {
	sub, ok := GetSubcategory("knotless", "knotless-braids")
	require.True(t, ok)
	assert.Equal(t, "Knotless Braids", sub.Name)
	assert.Len(t, sub.Items, 5)

	_, ok = GetSubcategory("knotless", "island-twist")
	assert.False(t, ok, "subcategory lookup must be scoped to its category")
}

func TestFindSubcategory(t *testing.T) {
	cat, sub, ok := FindSubcategory("island-twist")
	require.True(t, ok)
	assert.Equal(t, "twists", cat.Slug)
	assert.Equal(t, "Island Twist", sub.Name)

	_, _, ok = FindSubcategory("no-such-sub")
	assert.False(t, ok)
}

func newCatalogRouter() http.Handler {
	h := NewHandler()
	r := chi.NewRouter()
	r.Get("/api/catalog", h.ListCategories)
	r.Get("/api/catalog/{slug}", h.GetCategory)
	r.Get("/api/catalog/{slug}/{subSlug}", h.GetSubcategory)
	return r
}

func TestHandlerListCategories(t *testing.T) {
	rr := httptest.NewRecorder()
	newCatalogRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Categories []Category `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Len(t, body.Categories, len(Categories()))
}

func TestHandlerGetCategoryNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	newCatalogRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/catalog/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlerGetSubcategory(t *testing.T) {
	rr := httptest.NewRecorder()
	newCatalogRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/catalog/locs/soft-locs", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var sub Subcategory
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sub))
	assert.Equal(t, "Soft Locs", sub.Name)
}
