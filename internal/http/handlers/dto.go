package handlers

import "github.com/lendifyit/lendify-api/internal/models"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Username string `json:"username"`
}

type AdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

type AdminResponse struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type BorrowerRequest struct {
	Name   string `json:"name"`
	UnitID int    `json:"unit_id"`
}

type ItemRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	PurchaseDate string `json:"purchase_date"`
	CategoryID   int    `json:"category_id"`
	Quantity     int    `json:"quantity"`
}

type BorrowRequest struct {
	ItemID     int    `json:"item_id"`
	BorrowerID int    `json:"borrower_id"`
	Purpose    string `json:"purpose"`
	Duration   int    `json:"duration"` // expected days, >= 1
}

// LoanResponse decorates a loan record with the display values recomputed
// on every read: the "N Hari" duration and the overdue classification.
type LoanResponse struct {
	models.LoanRecord
	Duration string `json:"duration"`
	Overdue  bool   `json:"overdue"`
	Warning  string `json:"warning,omitempty"`
}

type ImportResult struct {
	ImportedCount int               `json:"imported"`
	Errors        []ValidationError `json:"errors"`
}
