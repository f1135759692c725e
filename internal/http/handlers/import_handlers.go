package handlers

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

const maxImportSize = 1 << 20 // 1 MiB

// readImportNames parses an uploaded name-per-line CSV. Blank lines are
// dropped first, then the leading line is skipped as the header.
func readImportNames(r *http.Request) ([]string, error) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		return nil, fmt.Errorf("parse upload: %w", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return lines[1:], nil
}

// ImportUnitsHandler godoc
// @Summary Bulk-create units from an uploaded CSV
// @Description One unit name per line, the first line is a header. Rows that
// @Description fail are reported individually; the rest still import.
// @Tags units
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "Bad upload"
// @Router /units/import [post]
func ImportUnitsHandler(w http.ResponseWriter, r *http.Request) {
	names, err := readImportNames(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportResult{Errors: []ValidationError{}}
	for i, name := range names {
		if _, err := unitRepo.Create(models.Unit{Name: name}); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:       fmt.Sprintf("row %d", i+2),
				Description: fmt.Sprintf("could not import %q", name),
			})
			continue
		}
		result.ImportedCount++
	}
	if result.ImportedCount > 0 {
		reloadSnapshot()
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// ImportBorrowersHandler godoc
// @Summary Bulk-register borrowers from an uploaded CSV
// @Description One borrower name per line, the first line is a header. All
// @Description imported borrowers are assigned to the first unit and can be
// @Description reassigned afterwards.
// @Tags borrowers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "Bad upload"
// @Failure 409 {string} string "No units exist"
// @Router /borrowers/import [post]
func ImportBorrowersHandler(w http.ResponseWriter, r *http.Request) {
	names, err := readImportNames(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	units, err := unitRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch units", http.StatusInternalServerError)
		return
	}
	if len(units) == 0 {
		http.Error(w, "create a unit before importing borrowers", http.StatusConflict)
		return
	}
	defaultUnit := units[0]

	result := ImportResult{Errors: []ValidationError{}}
	for i, name := range names {
		if _, err := borrowerRepo.Create(models.Borrower{Name: name, UnitID: defaultUnit.ID}); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:       fmt.Sprintf("row %d", i+2),
				Description: fmt.Sprintf("could not import %q", name),
			})
			continue
		}
		result.ImportedCount++
	}
	if result.ImportedCount > 0 {
		reloadSnapshot()
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
