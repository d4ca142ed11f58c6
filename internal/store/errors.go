// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Configuration errors returned by [NewStorages].
var (
	// ErrUnsupportedDSN is returned when the DSN scheme does not map to any
	// supported storage backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrConnectingDB is returned when the database cannot be opened or pinged.
	ErrConnectingDB = errors.New("error connecting database")

	// ErrMigratingDB is returned when schema migrations fail at startup.
	ErrMigratingDB = errors.New("error migrating database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single customer row fails.
	ErrScanningRow = errors.New("failed to scan customer row")

	// ErrScanningRows is returned when iterating a customer result set fails.
	ErrScanningRows = errors.New("failed to scan customer rows")

	// ErrStorageUnavailable is returned by Ping when the storage cannot be reached.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
