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

// GetUnitsHandler godoc
// @Summary List all organizational units
// @Tags units
// @Produce json
// @Success 200 {array} models.Unit
// @Router /units [get]
func GetUnitsHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, snap.Current().Units); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// CreateUnitHandler godoc
// @Summary Add a new unit
// @Tags units
// @Accept json
// @Produce json
// @Param unit body NameRequest true "Unit to add"
// @Success 201 {object} models.Unit
// @Failure 400 {array} ValidationError
// @Router /units [post]
func CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
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

	created, err := unitRepo.Create(models.Unit{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		http.Error(w, "could not create unit", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteUnitHandler godoc
// @Summary Delete a unit
// @Tags units
// @Param id path int true "Unit ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /units/{id} [delete]
func DeleteUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid unit ID", http.StatusBadRequest)
		return
	}

	if err := unitRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrUnitNotFound) {
			http.Error(w, "unit not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete unit", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	w.WriteHeader(http.StatusNoContent)
}
