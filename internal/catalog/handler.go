package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the read-only service catalog.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListCategories handles GET /api/catalog requests
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": Categories()})
}

// GetCategory handles GET /api/catalog/{slug} requests
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	category, ok := GetCategory(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// GetSubcategory handles GET /api/catalog/{slug}/{subSlug} requests
func (h *Handler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	subSlug := chi.URLParam(r, "subSlug")
	subcategory, ok := GetSubcategory(slug, subSlug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "subcategory not found"})
		return
	}
	writeJSON(w, http.StatusOK, subcategory)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
