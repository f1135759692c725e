package models

// Category groups items for filtering and reporting.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
