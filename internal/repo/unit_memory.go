package repo

import (
	"sort"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryUnitRepository is an in-memory implementation of UnitRepository.
type InMemoryUnitRepository struct {
	units  []models.Unit
	nextID int
}

func NewInMemoryUnitRepository() *InMemoryUnitRepository {
	return &InMemoryUnitRepository{nextID: 1}
}

func (r *InMemoryUnitRepository) GetAll() ([]models.Unit, error) {
	out := make([]models.Unit, len(r.units))
	copy(out, r.units)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InMemoryUnitRepository) Create(u models.Unit) (models.Unit, error) {
	u.ID = r.nextID
	r.nextID++
	r.units = append(r.units, u)
	return u, nil
}

func (r *InMemoryUnitRepository) Delete(id int) error {
	for i, u := range r.units {
		if u.ID == id {
			r.units = append(r.units[:i], r.units[i+1:]...)
			return nil
		}
	}
	return ErrUnitNotFound
}

func (r *InMemoryUnitRepository) Clear() {
	r.units = nil
	r.nextID = 1
}
