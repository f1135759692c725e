package models

// Admin is a panel account. The password is stored and compared verbatim.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
