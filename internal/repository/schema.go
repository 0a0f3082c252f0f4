package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var schemas = map[string][]string{
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS users (
			id       BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			email    VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id    BIGINT AUTO_INCREMENT PRIMARY KEY,
			name  VARCHAR(255) NOT NULL,
			price DOUBLE NOT NULL
		)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			email    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			price REAL NOT NULL
		)`,
	},
}

// Migrate creates the users and products tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
