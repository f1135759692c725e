package handlers

import (
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/session"
	"github.com/lendifyit/lendify-api/internal/snapshot"
)

var (
	categoryRepo repo.CategoryRepository
	itemRepo     repo.ItemRepository
	unitRepo     repo.UnitRepository
	borrowerRepo repo.BorrowerRepository
	adminRepo    repo.AdminRepository
	loanRepo     repo.LoanRepository

	sessions session.Store
	snap     *snapshot.Store
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetUnitRepo(r repo.UnitRepository) {
	unitRepo = r
}

func SetBorrowerRepo(r repo.BorrowerRepository) {
	borrowerRepo = r
}

func SetAdminRepo(r repo.AdminRepository) {
	adminRepo = r
}

func SetLoanRepo(r repo.LoanRepository) {
	loanRepo = r
}

func SetSessionStore(s session.Store) {
	sessions = s
}

func SetSnapshotStore(s *snapshot.Store) {
	snap = s
}
