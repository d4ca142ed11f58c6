// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/models"
)

// customerRepository is the SQL implementation of [CustomerRepository]
// shared by the PostgreSQL and SQLite backends. Queries are built with
// squirrel using the placeholder format of the connection's dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// that database failures are traced with the request's trace id.
type customerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by db.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.City,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomersQuery(r.db.builder(), sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByID").Msg("failed to create query")
		return models.Customer{}, false, err
	}

	var customer models.Customer
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		customer, scanErr = scanCustomer(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindByID").Int64("id", id).Msg("failed to scan customer row")
		return models.Customer{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return customer, true, nil
}

func (r *customerRepository) FindByFirstName(ctx context.Context, firstName string) ([]models.Customer, error) {
	return r.find(ctx, "*customerRepository.FindByFirstName", sq.Eq{"first_name": firstName})
}

func (r *customerRepository) FindByLastName(ctx context.Context, lastName string) ([]models.Customer, error) {
	return r.find(ctx, "*customerRepository.FindByLastName", sq.Eq{"last_name": lastName})
}

func (r *customerRepository) FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]models.Customer, error) {
	return r.find(ctx, "*customerRepository.FindByFirstNameAndLastName", sq.Eq{"first_name": firstName, "last_name": lastName})
}

func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	return r.find(ctx, "*customerRepository.FindAll", nil)
}

// find runs a filtered SELECT and collects every row. The result is never nil.
func (r *customerRepository) find(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCustomersQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

func (r *customerRepository) Save(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if customer.IsNew() {
		return r.insert(ctx, customer)
	}
	return r.upsert(ctx, customer)
}

func (r *customerRepository) insert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCustomerQuery(r.db.builder(), customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.insert").Msg("failed to create query")
		return models.Customer{}, err
	}

	var saved models.Customer
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		saved, scanErr = scanCustomer(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.insert").Str("sqlstate", postgresError(err)).Msg("failed to insert customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("id", saved.ID).Msg("customer inserted")
	return saved, nil
}

// upsert replaces the customer keyed by its id inside a transaction. On
// PostgreSQL the id sequence is advanced past explicitly inserted ids.
func (r *customerRepository) upsert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx).With().Int64("id", customer.ID).Logger()

	query, args, err := buildUpsertCustomerQuery(r.db.builder(), customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.upsert").Msg("failed to create query")
		return models.Customer{}, err
	}

	var saved models.Customer
	err = r.db.withRetry(ctx, func() error {
		var txErr error
		saved, txErr = r.upsertTx(ctx, query, args)
		return txErr
	})
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.upsert").Str("sqlstate", postgresError(err)).Msg("failed to save customer")
		return models.Customer{}, err
	}

	return saved, nil
}

func (r *customerRepository) upsertTx(ctx context.Context, query string, args []any) (models.Customer, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved, err := scanCustomer(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if r.db.dialect == DialectPostgres {
		if _, err = tx.ExecContext(ctx, syncPostgresSequence); err != nil {
			return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCustomerQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Delete").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Delete").Int64("id", id).Msg("failed to delete customer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affectedErr := result.RowsAffected(); affectedErr == nil && affected == 0 {
		log.Debug().Int64("id", id).Msg("nothing to delete")
	}

	return nil
}

func (r *customerRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
