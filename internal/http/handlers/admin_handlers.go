package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
)

// GetAdminsHandler godoc
// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Success 200 {array} AdminResponse
// @Router /admins [get]
func GetAdminsHandler(w http.ResponseWriter, r *http.Request) {
	admins := snap.Current().Admins
	response := make([]AdminResponse, len(admins))
	for i, a := range admins {
		response[i] = AdminResponse{Id: a.ID, Username: a.Username}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// CreateAdminHandler godoc
// @Summary Add a new admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body AdminRequest true "Admin to add"
// @Success 201 {object} AdminResponse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Username taken"
// @Router /admins [post]
func CreateAdminHandler(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAdmin(req, true)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := adminRepo.Create(models.Admin{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create admin", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusCreated, AdminResponse{Id: created.ID, Username: created.Username}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateAdminHandler godoc
// @Summary Update an admin's username and/or reset the password
// @Tags admins
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param admin body AdminRequest true "Updated admin"
// @Success 200 {object} AdminResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /admins/{id} [put]
func UpdateAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid admin ID", http.StatusBadRequest)
		return
	}

	var req AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	// An empty password keeps the current one.
	validationErrors := validateAdmin(req, false)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := adminRepo.Update(models.Admin{ID: id, Username: req.Username, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrAdminNotFound):
			http.Error(w, "admin not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "username already exists", http.StatusConflict)
		default:
			http.Error(w, "could not update admin", http.StatusInternalServerError)
		}
		return
	}
	reloadSnapshot()

	if err := writeJSON(w, http.StatusOK, AdminResponse{Id: updated.ID, Username: updated.Username}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// DeleteAdminHandler godoc
// @Summary Delete an admin account
// @Description The currently logged-in admin cannot delete itself, and the
// @Description last remaining admin cannot be deleted.
// @Tags admins
// @Param id path int true "Admin ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Business rule violated"
// @Router /admins/{id} [delete]
func DeleteAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid admin ID", http.StatusBadRequest)
		return
	}

	admins := snap.Current().Admins
	var target *models.Admin
	for i := range admins {
		if admins[i].ID == id {
			target = &admins[i]
			break
		}
	}
	if target == nil {
		http.Error(w, "admin not found", http.StatusNotFound)
		return
	}

	if target.Username == UsernameFromContext(r) {
		http.Error(w, "cannot delete the currently logged-in admin", http.StatusConflict)
		return
	}
	if len(admins) <= 1 {
		http.Error(w, "at least one admin must remain", http.StatusConflict)
		return
	}

	if err := adminRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrAdminNotFound) {
			http.Error(w, "admin not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete admin", http.StatusInternalServerError)
		return
	}
	reloadSnapshot()

	w.WriteHeader(http.StatusNoContent)
}
