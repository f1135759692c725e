package repo

import "github.com/lendifyit/lendify-api/internal/models"

// AdminRepository defines the interface for admin account operations.
// Update leaves the password untouched when Password is empty.
type AdminRepository interface {
	GetAll() ([]models.Admin, error)
	GetByUsername(username string) (models.Admin, error)
	Create(a models.Admin) (models.Admin, error)
	Update(a models.Admin) (models.Admin, error)
	Delete(id int) error
}
