// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "serialization", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("other")))
}

func withShortRetryDelays(t *testing.T) {
	t.Helper()
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })
}

func TestWithRetry_RetriesRetryableUntilSuccess(t *testing.T) {
	withShortRetryDelays(t)
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_GivesUpAfterAllDelays(t *testing.T) {
	withShortRetryDelays(t)
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	})

	assert.Error(t, err)
	assert.Equal(t, len(retryDelays)+1, calls)
}

func TestWithRetry_NonRetryableReturnsImmediately(t *testing.T) {
	withShortRetryDelays(t)
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
