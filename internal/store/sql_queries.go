// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customers/models"
)

const customersTable = "customers"

// customerColumns is the column order every SELECT and RETURNING clause uses;
// scanCustomer depends on it.
var customerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"city",
	"created_at",
	"updated_at",
}

// customerWritableColumns are the columns supplied by callers on save.
var customerWritableColumns = []string{
	"first_name",
	"last_name",
	"email",
	"phone",
	"city",
}

const returningCustomer = "RETURNING id, first_name, last_name, email, phone, city, created_at, updated_at"

// upsertCustomerSuffix replaces an existing row with the same id. EXCLUDED is
// understood by both PostgreSQL and SQLite.
const upsertCustomerSuffix = `ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		city = EXCLUDED.city,
		updated_at = CURRENT_TIMESTAMP ` + returningCustomer

// syncPostgresSequence moves the id sequence past ids inserted explicitly by
// an upsert, so that later inserts do not collide with them.
const syncPostgresSequence = `SELECT setval(pg_get_serial_sequence('customers', 'id'), GREATEST((SELECT MAX(id) FROM customers), 1))`

// buildSelectCustomersQuery builds a SELECT over customers filtered by where
// (nil selects every row), ordered by id.
func buildSelectCustomersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(customerColumns...).From(customersTable)
	if where != nil {
		query = query.Where(where)
	}

	sqlQuery, args, err := query.OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildInsertCustomerQuery builds an INSERT that lets the database assign the id.
func buildInsertCustomerQuery(b sq.StatementBuilderType, customer models.Customer) (string, []any, error) {
	sqlQuery, args, err := b.Insert(customersTable).
		Columns(customerWritableColumns...).
		Values(customer.FirstName, customer.LastName, customer.Email, customer.Phone, customer.City).
		Suffix(returningCustomer).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildUpsertCustomerQuery builds an INSERT ... ON CONFLICT (id) DO UPDATE
// keyed by customer.ID.
func buildUpsertCustomerQuery(b sq.StatementBuilderType, customer models.Customer) (string, []any, error) {
	sqlQuery, args, err := b.Insert(customersTable).
		Columns(append([]string{"id"}, customerWritableColumns...)...).
		Values(customer.ID, customer.FirstName, customer.LastName, customer.Email, customer.Phone, customer.City).
		Suffix(upsertCustomerSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildDeleteCustomerQuery builds a DELETE by id.
func buildDeleteCustomerQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	sqlQuery, args, err := b.Delete(customersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}
