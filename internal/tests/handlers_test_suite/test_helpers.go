package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	api "github.com/lendifyit/lendify-api/internal/http"
	handler "github.com/lendifyit/lendify-api/internal/http/handlers"
	"github.com/lendifyit/lendify-api/internal/http/ratelimit"
	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/session"
	"github.com/lendifyit/lendify-api/internal/snapshot"
)

var (
	sessionCookie *http.Cookie

	categoryRepo *repo.InMemoryCategoryRepository
	itemRepo     *repo.InMemoryItemRepository
	unitRepo     *repo.InMemoryUnitRepository
	borrowerRepo *repo.InMemoryBorrowerRepository
	adminRepo    *repo.InMemoryAdminRepository
	loanRepo     *repo.InMemoryLoanRepository
	snap         *snapshot.Store
)

func init() {
	setupTestRepos()
	r := api.NewRouter()

	var err error
	sessionCookie, err = login(r, "admin", "password")
	if err != nil {
		panic(fmt.Sprintf("error logging in: %v", err))
	}
}

func setupTestRepos() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)

	unitRepo = repo.NewInMemoryUnitRepository()
	handler.SetUnitRepo(unitRepo)

	borrowerRepo = repo.NewInMemoryBorrowerRepository()
	handler.SetBorrowerRepo(borrowerRepo)

	adminRepo = repo.NewInMemoryAdminRepository()
	handler.SetAdminRepo(adminRepo)
	adminRepo.Create(models.Admin{Username: "admin", Password: "password"})

	loanRepo = repo.NewInMemoryLoanRepository()
	handler.SetLoanRepo(loanRepo)

	sessions := session.NewMemoryStore()
	handler.SetSessionStore(sessions)
	api.SetSessionStore(sessions)

	snap = snapshot.NewStore(categoryRepo, itemRepo, unitRepo, borrowerRepo, adminRepo, loanRepo)
	if err := snap.Reload(); err != nil {
		panic(fmt.Sprintf("error loading snapshot: %v", err))
	}
	handler.SetSnapshotStore(snap)
}

func login(r http.Handler, username, password string) (*http.Cookie, error) {
	ratelimit.Reset()

	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == handler.SessionCookie {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no session cookie in login response")
}

// clearAll resets every collection except the admin account and the active
// session, then refreshes the snapshot.
func clearAll() {
	categoryRepo.Clear()
	itemRepo.Clear()
	unitRepo.Clear()
	borrowerRepo.Clear()
	loanRepo.Clear()
	if err := snap.Reload(); err != nil {
		panic(fmt.Sprintf("error reloading snapshot: %v", err))
	}
}

func authRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.AddCookie(sessionCookie)
	return req
}

func doJSON(r http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := authRequest(method, target, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, it handler.ItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/items", it)
}

func createUnit(r http.Handler, name string) models.Unit {
	w := doJSON(r, http.MethodPost, "/units", handler.NameRequest{Name: name})
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create test unit %q: status %d", name, w.Code))
	}
	var unit models.Unit
	json.NewDecoder(w.Body).Decode(&unit)
	return unit
}

func createBorrower(r http.Handler, name string, unitID int) models.Borrower {
	w := doJSON(r, http.MethodPost, "/borrowers", handler.BorrowerRequest{Name: name, UnitID: unitID})
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create test borrower %q: status %d", name, w.Code))
	}
	var borrower models.Borrower
	json.NewDecoder(w.Body).Decode(&borrower)
	return borrower
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
