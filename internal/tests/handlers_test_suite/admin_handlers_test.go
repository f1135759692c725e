package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/lendifyit/lendify-api/internal/http"
	handler "github.com/lendifyit/lendify-api/internal/http/handlers"
)

func createAdmin(t *testing.T, r http.Handler, username, password string) handler.AdminResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/admins", handler.AdminRequest{Username: username, Password: password})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create admin %q: status %d", username, w.Code)
	}
	var created handler.AdminResponse
	json.NewDecoder(w.Body).Decode(&created)
	return created
}

func deleteAdmin(r http.Handler, id int) *httptest.ResponseRecorder {
	req := authRequest(http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAdminsHandler_OmitsPasswords(t *testing.T) {
	r := api.NewRouter()

	req := authRequest(http.MethodGet, "/admins", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var raw []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected at least the seeded admin")
	}
	for _, entry := range raw {
		if _, ok := entry["password"]; ok {
			t.Errorf("expected no password field in %v", entry)
		}
	}
}

func TestCreateAdminHandler(t *testing.T) {
	r := api.NewRouter()

	created := createAdmin(t, r, "operator", "secret")
	t.Cleanup(func() { deleteAdmin(r, created.Id) })

	if created.Username != "operator" {
		t.Errorf("expected username 'operator', got %q", created.Username)
	}

	t.Run("duplicate username rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admins", handler.AdminRequest{Username: "operator", Password: "other"})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("password required for new admin", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admins", handler.AdminRequest{Username: "nopass"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestUpdateAdminHandler_EmptyPasswordKeepsCurrent(t *testing.T) {
	r := api.NewRouter()

	created := createAdmin(t, r, "rotating", "original")
	t.Cleanup(func() { deleteAdmin(r, created.Id) })

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/admins/%d", created.Id),
		handler.AdminRequest{Username: "rotated"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	stored, err := adminRepo.GetByUsername("rotated")
	if err != nil {
		t.Fatalf("error fetching updated admin: %v", err)
	}
	if stored.Password != "original" {
		t.Errorf("expected password unchanged, got %q", stored.Password)
	}
}

func TestUpdateAdminHandler_DuplicateUsername(t *testing.T) {
	r := api.NewRouter()

	created := createAdmin(t, r, "renaming", "secret")
	t.Cleanup(func() { deleteAdmin(r, created.Id) })

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/admins/%d", created.Id),
		handler.AdminRequest{Username: "admin"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict renaming onto an existing username, got %d", w.Code)
	}

	if _, err := adminRepo.GetByUsername("renaming"); err != nil {
		t.Errorf("expected the admin to keep its username: %v", err)
	}
}

func TestDeleteAdminHandler_Rules(t *testing.T) {
	r := api.NewRouter()

	t.Run("cannot delete the logged-in admin", func(t *testing.T) {
		seeded, err := adminRepo.GetByUsername("admin")
		if err != nil {
			t.Fatalf("error fetching seeded admin: %v", err)
		}
		other := createAdmin(t, r, "bystander", "secret")
		t.Cleanup(func() { deleteAdmin(r, other.Id) })

		if w := deleteAdmin(r, seeded.ID); w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("cannot delete the last admin", func(t *testing.T) {
		// The session of a deleted account stays alive, so log in as a
		// second admin, remove that account and use its session against
		// the one admin left.
		extra := createAdmin(t, r, "temp", "secret")
		tempCookie, err := login(r, "temp", "secret")
		if err != nil {
			t.Fatalf("error logging in as temp: %v", err)
		}
		if w := deleteAdmin(r, extra.Id); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 deleting the second admin, got %d", w.Code)
		}

		seeded, _ := adminRepo.GetByUsername("admin")
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/admins/%d", seeded.ID), nil)
		req.AddCookie(tempCookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict deleting the last admin, got %d", w.Code)
		}
	})

	t.Run("unknown admin", func(t *testing.T) {
		if w := deleteAdmin(r, 999999); w.Code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", w.Code)
		}
	})
}
