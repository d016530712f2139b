package postgres

import (
	"context"

	"rentable-backend/internal/logger"
)

// schemaStatements creates the tables when missing. Deleting a parent row
// nulls the child's reference instead of cascading.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`DO $$ BEGIN
		CREATE TYPE reservation_status AS ENUM ('pending', 'waiting_for_payment', 'confirmed', 'canceled', 'finished');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
		subcategory_id INTEGER REFERENCES subcategories(id) ON DELETE SET NULL,
		equipment_owner_id UUID REFERENCES users(id) ON DELETE SET NULL,
		price_per_day DOUBLE PRECISION NOT NULL CHECK (price_per_day > 0),
		is_available BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id SERIAL PRIMARY KEY,
		user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		equipment_id INTEGER REFERENCES equipment(id) ON DELETE SET NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status reservation_status NOT NULL DEFAULT 'pending',
		total_price DOUBLE PRECISION NOT NULL,
		CONSTRAINT reservations_date_range CHECK (end_date >= start_date)
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_equipment_status_idx ON reservations (equipment_id, status)`,
	`CREATE TABLE IF NOT EXISTS equipment_reviews (
		id SERIAL PRIMARY KEY,
		reviewer_id UUID REFERENCES users(id) ON DELETE SET NULL,
		equipment_id INTEGER REFERENCES equipment(id) ON DELETE SET NULL,
		rating INTEGER NOT NULL CHECK (rating >= 0 AND rating <= 10),
		comment TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS user_reviews (
		id SERIAL PRIMARY KEY,
		reviewer_id UUID REFERENCES users(id) ON DELETE SET NULL,
		reviewed_user_id UUID REFERENCES users(id) ON DELETE SET NULL,
		rating INTEGER NOT NULL CHECK (rating >= 0 AND rating <= 10),
		comment TEXT
	)`,
}

// Migrate applies the schema. Every statement is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		logger.DatabaseCall("MIGRATE", stmt)
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			logger.DatabaseResult("MIGRATE", 0, err)
			return mapError("migrate", err)
		}
	}
	logger.Info("Database schema is up to date", "statements", len(schemaStatements))
	return nil
}
