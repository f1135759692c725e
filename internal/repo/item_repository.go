package repo

import "github.com/lendifyit/lendify-api/internal/models"

// ItemRepository defines the interface for item data operations.
// AdjustQuantity applies a delta atomically and fails with
// ErrInvalidQuantityChange when the result would be negative.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id int) (models.Item, error)
	Create(item models.Item) (models.Item, error)
	Update(item models.Item) (models.Item, error)
	Delete(id int) error
	AdjustQuantity(id, delta int) (models.Item, error)
}
