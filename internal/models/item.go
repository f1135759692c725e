package models

// Item represents a piece of equipment in the inventory. Quantity is the
// aggregate count of units currently in stock; individual units have no
// identity of their own.
type Item struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	PurchaseDate string `json:"purchase_date"` // 2006-01-02
	CategoryID   int    `json:"category_id"`
	Quantity     int    `json:"quantity"`
}
