package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/lendifyit/lendify-api/internal/http"
	handler "github.com/lendifyit/lendify-api/internal/http/handlers"
	"github.com/lendifyit/lendify-api/internal/models"
)

func TestCreateItemHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{
		Name:         "ThinkPad X1",
		Description:  "Development laptop",
		PurchaseDate: "2025-06-01",
		Quantity:     3,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Item
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "ThinkPad X1" {
		t.Errorf("expected name 'ThinkPad X1', got %v", resp.Name)
	}
	if resp.Quantity != 3 {
		t.Errorf("expected quantity 3, got %v", resp.Quantity)
	}
	if resp.ID == 0 {
		t.Error("expected a generated ID")
	}
}

func TestCreateItemHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ItemRequest
		expectedErrors []string
	}{
		{
			name:           "empty name and description",
			payload:        handler.ItemRequest{},
			expectedErrors: []string{"Name", "Description"},
		},
		{
			name:           "negative quantity",
			payload:        handler.ItemRequest{Name: "Mouse", Description: "Wireless", Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "malformed purchase date",
			payload:        handler.ItemRequest{Name: "Mouse", Description: "Wireless", PurchaseDate: "01/06/2025"},
			expectedErrors: []string{"PurchaseDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createItem(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateItemHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" Quantity: 1}` // missing comma
	req := authRequest(http.MethodPost, "/items", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetItemsHandler_FilterAndSort(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	items := []handler.ItemRequest{
		{Name: "ThinkPad X1", Description: "Development laptop", CategoryID: 1, Quantity: 3, PurchaseDate: "2025-06-01"},
		{Name: "Dell Monitor", Description: "27 inch display", CategoryID: 2, Quantity: 5, PurchaseDate: "2024-01-15"},
		{Name: "HDMI Cable", Description: "Connects a laptop to a display", CategoryID: 3, Quantity: 10, PurchaseDate: "2026-02-20"},
	}
	for _, it := range items {
		if w := createItem(r, it); w.Code != http.StatusCreated {
			t.Fatalf("failed to create test item %q: %d", it.Name, w.Code)
		}
	}

	get := func(t *testing.T, target string) []models.Item {
		t.Helper()
		req := authRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var got []models.Item
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		return got
	}

	t.Run("search matches name and description", func(t *testing.T) {
		got := get(t, "/items?search=laptop")
		if len(got) != 2 {
			t.Errorf("expected 2 matches for 'laptop', got %d", len(got))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		got := get(t, "/items?category=2")
		if len(got) != 1 || got[0].Name != "Dell Monitor" {
			t.Errorf("expected only the monitor, got %v", got)
		}
	})

	t.Run("sort by quantity descending", func(t *testing.T) {
		got := get(t, "/items?sort_by=quantity&order=desc")
		if len(got) != 3 || got[0].Name != "HDMI Cable" {
			t.Errorf("expected the cable first, got %v", got)
		}
	})

	t.Run("invalid sort field rejected", func(t *testing.T) {
		req := authRequest(http.MethodGet, "/items?sort_by=price", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdateItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Old Name", Description: "Old", Quantity: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created models.Item
	json.NewDecoder(w.Body).Decode(&created)

	updateW := doJSON(r, http.MethodPut, fmt.Sprintf("/items/%d", created.ID),
		handler.ItemRequest{Name: "New Name", Description: "New", Quantity: 2})
	if updateW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", updateW.Code)
	}

	var updated models.Item
	json.NewDecoder(updateW.Body).Decode(&updated)
	if updated.Name != "New Name" || updated.Quantity != 2 {
		t.Errorf("unexpected updated item: %+v", updated)
	}
}

func TestUpdateItemHandler_NotFound(t *testing.T) {
	r := api.NewRouter()
	w := doJSON(r, http.MethodPut, "/items/999999",
		handler.ItemRequest{Name: "Ghost", Description: "Missing", Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Disposable", Description: "Gone soon", Quantity: 1})
	var created models.Item
	json.NewDecoder(w.Body).Decode(&created)

	req := authRequest(http.MethodDelete, fmt.Sprintf("/items/%d", created.ID), nil)
	delW := httptest.NewRecorder()
	r.ServeHTTP(delW, req)
	if delW.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", delW.Code)
	}

	getReq := authRequest(http.MethodGet, fmt.Sprintf("/items/%d", created.ID), nil)
	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusNotFound {
		t.Errorf("expected 404 after deletion, got %d", getW.Code)
	}
}

func TestExportItemsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/categories", handler.NameRequest{Name: "Laptop"})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create test category: %d", w.Code)
	}
	var cat models.Category
	json.NewDecoder(w.Body).Decode(&cat)

	createItem(r, handler.ItemRequest{
		Name:         "ThinkPad X1",
		Description:  "Development laptop",
		CategoryID:   cat.ID,
		Quantity:     3,
		PurchaseDate: "2025-06-01",
	})

	req := authRequest(http.MethodGet, "/items/export", nil)
	exportW := httptest.NewRecorder()
	r.ServeHTTP(exportW, req)

	if exportW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", exportW.Code)
	}
	if got := exportW.Header().Get("Content-Disposition"); !strings.Contains(got, "inventaris.csv") {
		t.Errorf("expected attachment filename inventaris.csv, got %q", got)
	}

	lines := strings.Split(strings.TrimSpace(exportW.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "Nama,Deskripsi,Kategori,Jumlah,TanggalBeli" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "ThinkPad X1,Development laptop,Laptop,3,2025-06-01" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}
