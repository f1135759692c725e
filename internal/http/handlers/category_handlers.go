package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, snap.Current().Categories); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// CreateCategoryHandler godoc
// @Summary Add a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body NameRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {array} ValidationError
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]ValidationError{{Field: "name", Description: "name is required"}})
		return
	}

	created, err := categoryRepo.Create(models.Category{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Items keep their categoryId; they render without a category
// @Description name until reassigned.
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if err := categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	w.WriteHeader(http.StatusNoContent)
}
