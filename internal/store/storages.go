// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-customers/internal/config"
	"github.com/MKhiriev/go-customers/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the database handle that backs them (nil for the memory backend).
type Storages struct {
	CustomerRepository CustomerRepository

	db *DB
}

// NewStorages selects a backend from cfg.DB.DSN, connects, applies
// migrations and constructs the repositories:
//   - "postgres://", "postgresql://": PostgreSQL;
//   - "file:", "*.db", "*.sqlite", ":memory:": SQLite;
//   - empty: memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dialect, err := dialectFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	if dialect == "" {
		log.Info().Msg("no database DSN configured, using in-memory customer storage")
		return &Storages{CustomerRepository: NewMemoryCustomerRepository()}, nil
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// dialectFromDSN maps a DSN onto a SQL dialect. An empty DSN yields an empty
// dialect, meaning the memory backend.
func dialectFromDSN(dsn string) (Dialect, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return "", nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"),
		lower == ":memory:",
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		strings.HasSuffix(lower, ".sqlite3"):
		return DialectSQLite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}
