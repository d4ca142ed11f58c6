// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the customers table for every
// supported dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialectDirs maps a goose dialect onto its migrations directory.
var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// ErrUnknownDialect is returned for dialects without embedded migrations.
var ErrUnknownDialect = errors.New("no migrations for dialect")

// Migrate applies all pending migrations of dialect ("pgx" or "sqlite3") to db.
func Migrate(db *sql.DB, dialect string) error {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	if db == nil {
		return errors.New("migration error: nil database")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
