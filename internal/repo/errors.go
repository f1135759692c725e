package repo

import "errors"

// Sentinel errors shared by the Postgres and in-memory implementations.
// Handlers match on these to pick a status code and leave the snapshot
// cache untouched.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrBorrowerNotFound = errors.New("borrower not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrLoanNotFound     = errors.New("loan record not found")

	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
	ErrInvalidQuantityChange = errors.New("quantity change would make quantity negative")
	ErrLoanAlreadyReturned   = errors.New("loan record already returned")
)
