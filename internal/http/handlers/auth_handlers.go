package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/lendifyit/lendify-api/internal/repo"
)

// SessionCookie carries the opaque session ID. Deliberately a session
// cookie (no Max-Age): the login lives for the browser session only, while
// the server-side entry expires on its own TTL.
const SessionCookie = "app_session"

// LoginHandler godoc
// @Summary Authenticate an admin and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	admin, err := adminRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrAdminNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "could not check credentials", http.StatusInternalServerError)
		return
	}

	// Passwords are stored and compared verbatim.
	if admin.Password != creds.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	sessionID := uuid.NewString()
	if err := sessions.Create(r.Context(), sessionID, admin.Username); err != nil {
		http.Error(w, "could not create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := writeJSON(w, http.StatusOK, LoginResult{Username: admin.Username}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// LogoutHandler godoc
// @Summary End the current session
// @Tags auth
// @Success 200 {object} map[string]bool
// @Failure 401 {string} string "Unauthorized"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if ck, err := r.Cookie(SessionCookie); err == nil && ck.Value != "" {
		_ = sessions.Delete(r.Context(), ck.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := writeJSON(w, http.StatusOK, map[string]bool{"ok": true}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// SessionHandler godoc
// @Summary Report the currently authenticated admin
// @Tags auth
// @Produce json
// @Success 200 {object} LoginResult
// @Failure 401 {string} string "Unauthorized"
// @Router /session [get]
func SessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, LoginResult{Username: UsernameFromContext(r)}); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
