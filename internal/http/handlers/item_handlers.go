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

// GetItemsHandler godoc
// @Summary List inventory items
// @Description Supports free-text search over name and description, filtering
// @Description by category and sorting by name, purchase date or quantity.
// @Tags items
// @Produce json
// @Param search query string false "Substring match on name or description"
// @Param category query int false "Category ID, 0 or absent for all"
// @Param sort_by query string false "name | purchase_date | quantity"
// @Param order query string false "asc | desc"
// @Success 200 {array} models.Item
// @Router /items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items := snap.Current().Items

	categoryID := 0
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid category ID", http.StatusBadRequest)
			return
		}
		categoryID = id
	}

	items = reports.FilterItems(items, r.URL.Query().Get("search"), categoryID)

	sortBy := r.URL.Query().Get("sort_by")
	if sortBy == "" {
		sortBy = reports.SortByName
	}
	switch sortBy {
	case reports.SortByName, reports.SortByPurchaseDate, reports.SortByQuantity:
	default:
		http.Error(w, "invalid sort field", http.StatusBadRequest)
		return
	}
	items = reports.SortItems(items, sortBy, r.URL.Query().Get("order") == "desc")

	if err := writeJSON(w, http.StatusOK, items); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetItemByIDHandler godoc
// @Summary Get a single item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, item); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// CreateItemHandler godoc
// @Summary Add a new inventory item
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} models.Item
// @Failure 400 {array} ValidationError
// @Router /items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := itemRepo.Create(models.Item{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PurchaseDate: req.PurchaseDate,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateItemHandler godoc
// @Summary Update an inventory item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Updated item"
// @Success 200 {object} models.Item
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := itemRepo.Update(models.Item{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		PurchaseDate: req.PurchaseDate,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteItemHandler godoc
// @Summary Delete an inventory item
// @Description Loan records referencing the item are kept for history.
// @Tags items
// @Param id path int true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	if err := itemRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	w.WriteHeader(http.StatusNoContent)
}

// GetItemHistoryHandler godoc
// @Summary Loan history of a single item, newest first
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {array} LoanResponse
// @Router /items/{id}/history [get]
func GetItemHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	now := time.Now()
	history := []LoanResponse{}
	for _, l := range snap.Current().Loans {
		if l.ItemID != id {
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
