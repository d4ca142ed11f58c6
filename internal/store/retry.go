// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-customers/internal/logger"
)

// retryDelays are the pauses between attempts of a retryable database call.
var retryDelays = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// withRetry runs fn and repeats it after each of retryDelays while the
// returned error is classified as [Retryable]. Context cancellation stops
// waiting and returns the last error of fn.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retryable database error, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}

		err = fn()
	}

	return err
}
