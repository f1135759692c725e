package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

type PostgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) GetAll() ([]models.Admin, error) {
	query := `SELECT id, username, password FROM admins ORDER BY username`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Password); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *PostgresAdminRepository) GetByUsername(username string) (models.Admin, error) {
	query := `SELECT id, username, password FROM admins WHERE username = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var a models.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrAdminNotFound
	}
	return a, err
}

func (r *PostgresAdminRepository) Create(a models.Admin) (models.Admin, error) {
	query := `INSERT INTO admins (username, password) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, a.Username, a.Password).Scan(&a.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Admin{}, ErrDuplicatedValueUnique
	}
	return a, err
}

func (r *PostgresAdminRepository) Update(a models.Admin) (models.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var res sql.Result
	var err error
	if a.Password == "" {
		res, err = r.db.ExecContext(ctx, `UPDATE admins SET username = $1 WHERE id = $2`, a.Username, a.ID)
	} else {
		res, err = r.db.ExecContext(ctx, `UPDATE admins SET username = $1, password = $2 WHERE id = $3`, a.Username, a.Password, a.ID)
	}
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return models.Admin{}, ErrDuplicatedValueUnique
		}
		return models.Admin{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Admin{}, ErrAdminNotFound
	}
	return a, nil
}

func (r *PostgresAdminRepository) Delete(id int) error {
	query := `DELETE FROM admins WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
