package repo

import "github.com/lendifyit/lendify-api/internal/models"

// BorrowerRepository defines the interface for borrower data operations.
type BorrowerRepository interface {
	GetAll() ([]models.Borrower, error)
	GetByID(id int) (models.Borrower, error)
	Create(b models.Borrower) (models.Borrower, error)
	Delete(id int) error
}
