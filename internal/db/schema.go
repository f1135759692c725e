package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS units (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		purchase_date TEXT NOT NULL DEFAULT '',
		category_id INTEGER NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS borrowers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		unit_id INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS loan_records (
		id SERIAL PRIMARY KEY,
		item_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		item_image TEXT NOT NULL DEFAULT '',
		borrower_id INTEGER NOT NULL,
		borrower_name TEXT NOT NULL,
		borrow_date TEXT NOT NULL,
		return_date TEXT,
		status TEXT NOT NULL CHECK (status IN ('borrowed', 'returned')),
		purpose TEXT NOT NULL DEFAULT '',
		expected_duration INTEGER NOT NULL DEFAULT 0
	)`,
}

// Migrate creates the six tables when they do not exist yet. Statements are
// idempotent so running it on every startup is safe.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}
	return nil
}
