package repo

import (
	"sort"
	"strings"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryBorrowerRepository is an in-memory implementation of
// BorrowerRepository.
type InMemoryBorrowerRepository struct {
	borrowers []models.Borrower
	nextID    int
}

func NewInMemoryBorrowerRepository() *InMemoryBorrowerRepository {
	return &InMemoryBorrowerRepository{nextID: 1}
}

func (r *InMemoryBorrowerRepository) GetAll() ([]models.Borrower, error) {
	out := make([]models.Borrower, len(r.borrowers))
	copy(out, r.borrowers)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InMemoryBorrowerRepository) GetByID(id int) (models.Borrower, error) {
	for _, b := range r.borrowers {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Borrower{}, ErrBorrowerNotFound
}

func (r *InMemoryBorrowerRepository) Create(b models.Borrower) (models.Borrower, error) {
	b.ID = r.nextID
	r.nextID++
	r.borrowers = append(r.borrowers, b)
	return b, nil
}

func (r *InMemoryBorrowerRepository) Delete(id int) error {
	for i, b := range r.borrowers {
		if b.ID == id {
			r.borrowers = append(r.borrowers[:i], r.borrowers[i+1:]...)
			return nil
		}
	}
	return ErrBorrowerNotFound
}

func (r *InMemoryBorrowerRepository) Clear() {
	r.borrowers = nil
	r.nextID = 1
}
