package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/lendifyit/lendify-api/internal/http"
	handler "github.com/lendifyit/lendify-api/internal/http/handlers"
)

func postCSV(r http.Handler, target, csvContent string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvContent, "upload.csv")
	req := authRequest(http.MethodPost, target, buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportUnitsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	csvContent := "Nama\nIT Development\nHuman Resources\n\nFinance\n"
	w := postCSV(r, "/units/import", csvContent)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedCount != 3 {
		t.Errorf("expected 3 imported units, got %d", result.ImportedCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", result.Errors)
	}

	units, _ := unitRepo.GetAll()
	if len(units) != 3 {
		t.Errorf("expected 3 units stored, got %d", len(units))
	}
}

func TestImportBorrowersHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createUnit(r, "IT Development")
	createUnit(r, "Finance")

	csvContent := "Nama\nBudi\nSari\nAndi\n"
	w := postCSV(r, "/borrowers/import", csvContent)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedCount != 3 {
		t.Errorf("expected 3 imported borrowers, got %d", result.ImportedCount)
	}

	// Units come back ordered by name, so "Finance" is the default.
	units, _ := unitRepo.GetAll()
	if len(units) == 0 || units[0].Name != "Finance" {
		t.Fatalf("expected the name-ordered units to start with Finance, got %+v", units)
	}

	borrowers, _ := borrowerRepo.GetAll()
	if len(borrowers) != 3 {
		t.Fatalf("expected 3 borrowers stored, got %d", len(borrowers))
	}
	for _, b := range borrowers {
		if b.UnitID != units[0].ID {
			t.Errorf("expected borrower %q assigned to unit %d, got unit %d", b.Name, units[0].ID, b.UnitID)
		}
	}
}

func TestImportBorrowersHandler_NoUnits(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := postCSV(r, "/borrowers/import", "Nama\nBudi\n")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict without any units, got %d", w.Code)
	}

	borrowers, _ := borrowerRepo.GetAll()
	if len(borrowers) != 0 {
		t.Errorf("expected no borrowers imported, got %d", len(borrowers))
	}
}

func TestImportUnitsHandler_MissingFile(t *testing.T) {
	r := api.NewRouter()

	req := authRequest(http.MethodPost, "/units/import", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestImportUnitsHandler_LeadingBlankLine(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	csvContent := "\nNama\nIT Development\nFinance\n"
	w := postCSV(r, "/units/import", csvContent)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedCount != 2 {
		t.Errorf("expected 2 imported units, got %d", result.ImportedCount)
	}

	units, _ := unitRepo.GetAll()
	for _, u := range units {
		if u.Name == "Nama" {
			t.Error("expected the header row to be skipped, found a unit named 'Nama'")
		}
	}
}

func TestImportUnitsHandler_HeaderOnly(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := postCSV(r, "/units/import", "Nama\n")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedCount != 0 {
		t.Errorf("expected nothing imported from a header-only file, got %d", result.ImportedCount)
	}
}
