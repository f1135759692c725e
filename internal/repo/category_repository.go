package repo

import "github.com/lendifyit/lendify-api/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(c models.Category) (models.Category, error)
	Delete(id int) error
}
