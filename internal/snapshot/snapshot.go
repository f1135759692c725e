// Package snapshot holds the last-fetched copy of every collection. The
// whole dataset is refetched after each mutation and swapped in with a
// single pointer assignment, so readers never observe a partially-updated
// cache and a failed refetch keeps the previous snapshot intact.
package snapshot

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
)

// Snapshot is one immutable view of all six collections. Collections keep
// the ordering the store returned: by name, loans by borrow date descending.
type Snapshot struct {
	Categories []models.Category
	Items      []models.Item
	Units      []models.Unit
	Borrowers  []models.Borrower
	Admins     []models.Admin
	Loans      []models.LoanRecord
	FetchedAt  time.Time
}

// Store owns the current snapshot and knows how to rebuild it from the
// repositories.
type Store struct {
	categories repo.CategoryRepository
	items      repo.ItemRepository
	units      repo.UnitRepository
	borrowers  repo.BorrowerRepository
	admins     repo.AdminRepository
	loans      repo.LoanRepository

	current atomic.Pointer[Snapshot]
}

func NewStore(
	categories repo.CategoryRepository,
	items repo.ItemRepository,
	units repo.UnitRepository,
	borrowers repo.BorrowerRepository,
	admins repo.AdminRepository,
	loans repo.LoanRepository,
) *Store {
	s := &Store{
		categories: categories,
		items:      items,
		units:      units,
		borrowers:  borrowers,
		admins:     admins,
		loans:      loans,
	}
	s.current.Store(&Snapshot{})
	return s
}

// Current returns the active snapshot. It is never nil; before the first
// successful Reload it is empty.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload fetches all six collections and replaces the snapshot atomically.
// If any fetch fails the previous snapshot stays in place and the error is
// returned once to the caller; there are no retries.
func (s *Store) Reload() error {
	next := &Snapshot{FetchedAt: time.Now()}

	var err error
	if next.Categories, err = s.categories.GetAll(); err != nil {
		return fmt.Errorf("reload categories: %w", err)
	}
	if next.Items, err = s.items.GetAll(); err != nil {
		return fmt.Errorf("reload items: %w", err)
	}
	if next.Units, err = s.units.GetAll(); err != nil {
		return fmt.Errorf("reload units: %w", err)
	}
	if next.Borrowers, err = s.borrowers.GetAll(); err != nil {
		return fmt.Errorf("reload borrowers: %w", err)
	}
	if next.Admins, err = s.admins.GetAll(); err != nil {
		return fmt.Errorf("reload admins: %w", err)
	}
	if next.Loans, err = s.loans.GetAll(); err != nil {
		return fmt.Errorf("reload loan records: %w", err)
	}

	s.current.Store(next)
	return nil
}
