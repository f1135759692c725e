package repo

import "github.com/lendifyit/lendify-api/internal/models"

// UnitRepository defines the interface for unit data operations.
type UnitRepository interface {
	GetAll() ([]models.Unit, error)
	Create(u models.Unit) (models.Unit, error)
	Delete(id int) error
}
