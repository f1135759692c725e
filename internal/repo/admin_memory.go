package repo

import (
	"sort"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryAdminRepository is an in-memory implementation of AdminRepository.
type InMemoryAdminRepository struct {
	admins []models.Admin
	nextID int
}

func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{nextID: 1}
}

func (r *InMemoryAdminRepository) GetAll() ([]models.Admin, error) {
	out := make([]models.Admin, len(r.admins))
	copy(out, r.admins)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Username) < strings.ToLower(out[j].Username)
	})
	return out, nil
}

func (r *InMemoryAdminRepository) GetByUsername(username string) (models.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Admin{}, ErrAdminNotFound
}

func (r *InMemoryAdminRepository) Create(a models.Admin) (models.Admin, error) {
	for _, existing := range r.admins {
		if existing.Username == a.Username {
			return models.Admin{}, ErrDuplicatedValueUnique
		}
	}
	a.ID = r.nextID
	r.nextID++
	r.admins = append(r.admins, a)
	return a, nil
}

func (r *InMemoryAdminRepository) Update(a models.Admin) (models.Admin, error) {
	for _, existing := range r.admins {
		if existing.ID != a.ID && existing.Username == a.Username {
			return models.Admin{}, ErrDuplicatedValueUnique
		}
	}
	for i, existing := range r.admins {
		if existing.ID == a.ID {
			if a.Password == "" {
				a.Password = existing.Password
			}
			r.admins[i] = a
			return a, nil
		}
	}
	return models.Admin{}, ErrAdminNotFound
}

func (r *InMemoryAdminRepository) Delete(id int) error {
	for i, a := range r.admins {
		if a.ID == id {
			r.admins = append(r.admins[:i], r.admins[i+1:]...)
			return nil
		}
	}
	return ErrAdminNotFound
}

func (r *InMemoryAdminRepository) Clear() {
	r.admins = nil
	r.nextID = 1
}
