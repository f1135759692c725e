package models

const (
	LoanStatusBorrowed = "borrowed"
	LoanStatusReturned = "returned"
)

// LoanRecord is a single borrow/return transaction. ItemName, ItemImage and
// BorrowerName are snapshots taken at loan creation and are never refreshed,
// so history stays accurate even after the source records change.
type LoanRecord struct {
	ID               int     `json:"id"`
	ItemID           int     `json:"item_id"`
	ItemName         string  `json:"item_name"`
	ItemImage        string  `json:"item_image"`
	BorrowerID       int     `json:"borrower_id"`
	BorrowerName     string  `json:"borrower_name"`
	BorrowDate       string  `json:"borrow_date"`           // RFC3339
	ReturnDate       *string `json:"return_date,omitempty"` // RFC3339, set iff returned
	Status           string  `json:"status"`
	Purpose          string  `json:"purpose"`
	ExpectedDuration int     `json:"expected_duration,omitempty"` // days, 0 = unset
}
