package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/reports"
)

// GetLoansHandler godoc
// @Summary List loan records, newest first
// @Description Each record carries a formatted duration and an overdue flag
// @Description computed at read time.
// @Tags loans
// @Produce json
// @Param status query string false "borrowed | returned"
// @Success 200 {array} LoanResponse
// @Router /loans [get]
func GetLoansHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", models.LoanStatusBorrowed, models.LoanStatusReturned:
	default:
		http.Error(w, "invalid status filter", http.StatusBadRequest)
		return
	}

	now := time.Now()
	response := []LoanResponse{}
	for _, l := range snap.Current().Loans {
		if status != "" && l.Status != status {
			continue
		}
		response = append(response, LoanResponse{
			LoanRecord: l,
			Duration:   reports.FormatDuration(l.BorrowDate, l.ReturnDate, now),
			Overdue:    reports.IsOverdue(l, now),
		})
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// BorrowItemHandler godoc
// @Summary Record a new loan and decrement the item's stock
// @Description The loan record denormalizes the item and borrower names so the
// @Description history survives later deletions. When the record is created but
// @Description the stock decrement fails, the response carries a warning
// @Description instead of rolling the loan back.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body BorrowRequest true "Loan to record"
// @Success 201 {object} LoanResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Item or borrower not found"
// @Failure 409 {string} string "Item out of stock"
// @Router /loans [post]
func BorrowItemHandler(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateBorrow(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item, err := itemRepo.GetByID(req.ItemID)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	if item.Quantity < 1 {
		http.Error(w, "item is out of stock", http.StatusConflict)
		return
	}

	borrower, err := borrowerRepo.GetByID(req.BorrowerID)
	if err != nil {
		if errors.Is(err, repo.ErrBorrowerNotFound) {
			http.Error(w, "borrower not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch borrower", http.StatusInternalServerError)
		return
	}

	created, err := loanRepo.Create(models.LoanRecord{
		ItemID:           item.ID,
		ItemName:         item.Name,
		ItemImage:        item.ImageURL,
		BorrowerID:       borrower.ID,
		BorrowerName:     borrower.Name,
		BorrowDate:       nowRFC3339(),
		Status:           models.LoanStatusBorrowed,
		Purpose:          req.Purpose,
		ExpectedDuration: req.Duration,
	})
	if err != nil {
		http.Error(w, "could not record loan", http.StatusInternalServerError)
		return
	}

	warning := ""
	if _, err := itemRepo.AdjustQuantity(item.ID, -1); err != nil {
		log.Printf("loan %d recorded but stock decrement for item %d failed: %v", created.ID, item.ID, err)
		warning = "loan recorded but the item stock could not be updated"
	}
	reloadSnapshot()

	now := time.Now()
	response := LoanResponse{
		LoanRecord: created,
		Duration:   reports.FormatDuration(created.BorrowDate, created.ReturnDate, now),
		Overdue:    reports.IsOverdue(created, now),
		Warning:    warning,
	}
	if err := writeJSON(w, http.StatusCreated, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// ReturnLoanHandler godoc
// @Summary Mark a loan as returned and restore the item's stock
// @Description If the item was deleted while on loan the stock restore is
// @Description skipped and the return still succeeds.
// @Tags loans
// @Produce json
// @Param id path int true "Loan ID"
// @Success 200 {object} LoanResponse
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Already returned"
// @Router /loans/{id}/return [post]
func ReturnLoanHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid loan ID", http.StatusBadRequest)
		return
	}

	returned, err := loanRepo.MarkReturned(id, nowRFC3339())
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrLoanNotFound):
			http.Error(w, "loan not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrLoanAlreadyReturned):
			http.Error(w, "loan already returned", http.StatusConflict)
		default:
			http.Error(w, "could not return loan", http.StatusInternalServerError)
		}
		return
	}

	if _, err := itemRepo.AdjustQuantity(returned.ItemID, 1); err != nil {
		if !errors.Is(err, repo.ErrItemNotFound) {
			log.Printf("loan %d returned but stock restore for item %d failed: %v", returned.ID, returned.ItemID, err)
		}
	}
	reloadSnapshot()

	now := time.Now()
	response := LoanResponse{
		LoanRecord: returned,
		Duration:   reports.FormatDuration(returned.BorrowDate, returned.ReturnDate, now),
		Overdue:    reports.IsOverdue(returned, now),
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
