package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

type PostgresBorrowerRepository struct {
	db *sql.DB
}

func NewPostgresBorrowerRepository(db *sql.DB) *PostgresBorrowerRepository {
	return &PostgresBorrowerRepository{db: db}
}

func (r *PostgresBorrowerRepository) GetAll() ([]models.Borrower, error) {
	query := `SELECT id, name, unit_id FROM borrowers ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowers []models.Borrower
	for rows.Next() {
		var b models.Borrower
		if err := rows.Scan(&b.ID, &b.Name, &b.UnitID); err != nil {
			return nil, err
		}
		borrowers = append(borrowers, b)
	}
	return borrowers, rows.Err()
}

func (r *PostgresBorrowerRepository) GetByID(id int) (models.Borrower, error) {
	query := `SELECT id, name, unit_id FROM borrowers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var b models.Borrower
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.UnitID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Borrower{}, ErrBorrowerNotFound
	}
	return b, err
}

func (r *PostgresBorrowerRepository) Create(b models.Borrower) (models.Borrower, error) {
	query := `INSERT INTO borrowers (name, unit_id) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, b.Name, b.UnitID).Scan(&b.ID)
	return b, err
}

func (r *PostgresBorrowerRepository) Delete(id int) error {
	query := `DELETE FROM borrowers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrBorrowerNotFound
	}
	return nil
}
