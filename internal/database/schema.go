package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS fixture_units (
		name  TEXT PRIMARY KEY,
		value NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fixture_addresses (
		category TEXT NOT NULL,
		position INT NOT NULL,
		address  TEXT NOT NULL,
		checksum TEXT NOT NULL,
		PRIMARY KEY (category, position)
	)`,
	`CREATE TABLE IF NOT EXISTS fixture_counts (
		name  TEXT PRIMARY KEY,
		value INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fixture_functions (
		function_id UUID PRIMARY KEY,
		position    INT NOT NULL,
		name        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS fixture_params (
		param_id    UUID PRIMARY KEY,
		function_id UUID NOT NULL REFERENCES fixture_functions (function_id),
		direction   TEXT NOT NULL,
		position    INT NOT NULL,
		name        TEXT NOT NULL,
		type        TEXT NOT NULL
	)`,
}

// Migrate creates the fixture tables if they do not exist.
func Migrate(ctx context.Context, db DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
