package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

type PostgresLoanRepository struct {
	db *sql.DB
}

func NewPostgresLoanRepository(db *sql.DB) *PostgresLoanRepository {
	return &PostgresLoanRepository{db: db}
}

const loanColumns = `id, item_id, item_name, item_image, borrower_id, borrower_name, borrow_date, return_date, status, purpose, expected_duration`

func scanLoan(row interface{ Scan(...any) error }) (models.LoanRecord, error) {
	var l models.LoanRecord
	var returnDate sql.NullString
	err := row.Scan(&l.ID, &l.ItemID, &l.ItemName, &l.ItemImage, &l.BorrowerID, &l.BorrowerName,
		&l.BorrowDate, &returnDate, &l.Status, &l.Purpose, &l.ExpectedDuration)
	if err != nil {
		return models.LoanRecord{}, err
	}
	if returnDate.Valid {
		l.ReturnDate = &returnDate.String
	}
	return l, nil
}

func (r *PostgresLoanRepository) GetAll() ([]models.LoanRecord, error) {
	query := `SELECT ` + loanColumns + ` FROM loan_records ORDER BY borrow_date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []models.LoanRecord
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *PostgresLoanRepository) GetByID(id int) (models.LoanRecord, error) {
	query := `SELECT ` + loanColumns + ` FROM loan_records WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	l, err := scanLoan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LoanRecord{}, ErrLoanNotFound
	}
	return l, err
}

func (r *PostgresLoanRepository) Create(l models.LoanRecord) (models.LoanRecord, error) {
	query := `INSERT INTO loan_records
		(item_id, item_name, item_image, borrower_id, borrower_name, borrow_date, status, purpose, expected_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, l.ItemID, l.ItemName, l.ItemImage, l.BorrowerID, l.BorrowerName,
		l.BorrowDate, l.Status, l.Purpose, l.ExpectedDuration).Scan(&l.ID)
	return l, err
}

func (r *PostgresLoanRepository) MarkReturned(id int, returnDate string) (models.LoanRecord, error) {
	query := `
		UPDATE loan_records
		SET status = 'returned', return_date = $1
		WHERE id = $2 AND status = 'borrowed'
		RETURNING ` + loanColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	l, err := scanLoan(r.db.QueryRowContext(ctx, query, returnDate, id))
	if errors.Is(err, sql.ErrNoRows) {
		if _, lookupErr := r.GetByID(id); errors.Is(lookupErr, ErrLoanNotFound) {
			return models.LoanRecord{}, ErrLoanNotFound
		}
		return models.LoanRecord{}, ErrLoanAlreadyReturned
	}
	return l, err
}
