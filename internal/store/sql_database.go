// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/migrations"
)

// Dialect names both the database/sql driver and the goose dialect of a
// SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// placeholder returns the bind-variable format squirrel must emit for d.
func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DB is a database/sql handle annotated with its dialect and the error
// classifier used to decide on retries.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect reports the SQL dialect of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder bound to db's placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}

// Migrate applies the embedded schema migrations for db's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("%w: %w", ErrMigratingDB, err)
	}

	return nil
}
