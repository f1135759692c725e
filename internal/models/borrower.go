package models

// Borrower is a person that can take items on loan.
type Borrower struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UnitID int    `json:"unit_id"`
}
