package repo

import "github.com/lendifyit/lendify-api/internal/models"

// LoanRepository defines the interface for loan record operations.
// GetAll returns records ordered by borrow date descending. MarkReturned
// flips a borrowed record to returned exactly once; a second call fails
// with ErrLoanAlreadyReturned.
type LoanRepository interface {
	GetAll() ([]models.LoanRecord, error)
	GetByID(id int) (models.LoanRecord, error)
	Create(l models.LoanRecord) (models.LoanRecord, error)
	MarkReturned(id int, returnDate string) (models.LoanRecord, error)
}
