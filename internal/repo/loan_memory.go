package repo

import (
	"sort"

	"github.com/lendifyit/lendify-api/internal/models"
)

// InMemoryLoanRepository is an in-memory implementation of LoanRepository.
type InMemoryLoanRepository struct {
	loans  []models.LoanRecord
	nextID int
}

func NewInMemoryLoanRepository() *InMemoryLoanRepository {
	return &InMemoryLoanRepository{nextID: 1}
}

func (r *InMemoryLoanRepository) GetAll() ([]models.LoanRecord, error) {
	out := make([]models.LoanRecord, len(r.loans))
	copy(out, r.loans)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BorrowDate > out[j].BorrowDate
	})
	return out, nil
}

func (r *InMemoryLoanRepository) GetByID(id int) (models.LoanRecord, error) {
	for _, l := range r.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return models.LoanRecord{}, ErrLoanNotFound
}

func (r *InMemoryLoanRepository) Create(l models.LoanRecord) (models.LoanRecord, error) {
	l.ID = r.nextID
	r.nextID++
	r.loans = append(r.loans, l)
	return l, nil
}

func (r *InMemoryLoanRepository) MarkReturned(id int, returnDate string) (models.LoanRecord, error) {
	for i, l := range r.loans {
		if l.ID == id {
			if l.Status != models.LoanStatusBorrowed {
				return models.LoanRecord{}, ErrLoanAlreadyReturned
			}
			r.loans[i].Status = models.LoanStatusReturned
			r.loans[i].ReturnDate = &returnDate
			return r.loans[i], nil
		}
	}
	return models.LoanRecord{}, ErrLoanNotFound
}

func (r *InMemoryLoanRepository) Clear() {
	r.loans = nil
	r.nextID = 1
}
