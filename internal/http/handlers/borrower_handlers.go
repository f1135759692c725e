package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/reports"
)

// GetBorrowersHandler godoc
// @Summary List all registered borrowers
// @Tags borrowers
// @Produce json
// @Success 200 {array} models.Borrower
// @Router /borrowers [get]
func GetBorrowersHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, snap.Current().Borrowers); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// CreateBorrowerHandler godoc
// @Summary Register a new borrower
// @Tags borrowers
// @Accept json
// @Produce json
// @Param borrower body BorrowerRequest true "Borrower to register"
// @Success 201 {object} models.Borrower
// @Failure 400 {array} ValidationError
// @Router /borrowers [post]
func CreateBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	var req BorrowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var validationErrors []ValidationError
	if strings.TrimSpace(req.Name) == "" {
		validationErrors = append(validationErrors, ValidationError{Field: "name", Description: "name is required"})
	}
	if req.UnitID == 0 {
		validationErrors = append(validationErrors, ValidationError{Field: "unitId", Description: "unit is required"})
	}
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := borrowerRepo.Create(models.Borrower{Name: strings.TrimSpace(req.Name), UnitID: req.UnitID})
	if err != nil {
		http.Error(w, "could not create borrower", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteBorrowerHandler godoc
// @Summary Delete a borrower
// @Description Loan records naming the borrower are kept for history.
// @Tags borrowers
// @Param id path int true "Borrower ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /borrowers/{id} [delete]
func DeleteBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid borrower ID", http.StatusBadRequest)
		return
	}

	if err := borrowerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrBorrowerNotFound) {
			http.Error(w, "borrower not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete borrower", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	w.WriteHeader(http.StatusNoContent)
}

// GetBorrowerHistoryHandler godoc
// @Summary Loan history of a single borrower, newest first
// @Tags borrowers
// @Produce json
// @Param id path int true "Borrower ID"
// @Success 200 {array} LoanResponse
// @Router /borrowers/{id}/history [get]
func GetBorrowerHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid borrower ID", http.StatusBadRequest)
		return
	}

	now := time.Now()
	history := []LoanResponse{}
	for _, l := range snap.Current().Loans {
		if l.BorrowerID != id {
			continue
		}
		history = append(history, LoanResponse{
			LoanRecord: l,
			Duration:   reports.FormatDuration(l.BorrowDate, l.ReturnDate, now),
			Overdue:    reports.IsOverdue(l, now),
		})
	}

	if err := writeJSON(w, http.StatusOK, history); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
