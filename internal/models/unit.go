package models

// Unit is the organizational grouping a borrower belongs to.
type Unit struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
