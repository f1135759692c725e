package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) GetAll() ([]models.Item, error) {
	query := `SELECT id, name, description, image_url, purchase_date, category_id, quantity FROM items ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.PurchaseDate, &it.CategoryID, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT id, name, description, image_url, purchase_date, category_id, quantity FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.PurchaseDate, &it.CategoryID, &it.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) Create(it models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, description, image_url, purchase_date, category_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, it.Name, it.Description, it.ImageURL, it.PurchaseDate, it.CategoryID, it.Quantity).Scan(&it.ID)
	return it, err
}

func (r *PostgresItemRepository) Update(it models.Item) (models.Item, error) {
	query := `UPDATE items SET name = $1, description = $2, image_url = $3, purchase_date = $4, category_id = $5, quantity = $6 WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.ImageURL, it.PurchaseDate, it.CategoryID, it.Quantity, it.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return it, nil
}

func (r *PostgresItemRepository) Delete(id int) error {
	query := `DELETE FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// AdjustQuantity applies delta in a single statement guarded against going
// negative, so concurrent borrows cannot overdraw the stock count.
func (r *PostgresItemRepository) AdjustQuantity(id, delta int) (models.Item, error) {
	query := `
		UPDATE items
		SET quantity = quantity + $1
		WHERE id = $2 AND quantity + $1 >= 0
		RETURNING id, name, description, image_url, purchase_date, category_id, quantity
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, delta, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.PurchaseDate, &it.CategoryID, &it.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		if _, lookupErr := r.GetByID(id); errors.Is(lookupErr, ErrItemNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, ErrInvalidQuantityChange
	}
	return it, err
}
