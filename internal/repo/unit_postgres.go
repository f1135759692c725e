package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

type PostgresUnitRepository struct {
	db *sql.DB
}

func NewPostgresUnitRepository(db *sql.DB) *PostgresUnitRepository {
	return &PostgresUnitRepository{db: db}
}

func (r *PostgresUnitRepository) GetAll() ([]models.Unit, error) {
	query := `SELECT id, name FROM units ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *PostgresUnitRepository) Create(u models.Unit) (models.Unit, error) {
	query := `INSERT INTO units (name) VALUES ($1) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, u.Name).Scan(&u.ID)
	return u, err
}

func (r *PostgresUnitRepository) Delete(id int) error {
	query := `DELETE FROM units WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrUnitNotFound
	}
	return nil
}
