// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPathParam is returned for path parameters that cannot be
	// parsed or fail validation.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrReadingBody is returned when the request body cannot be read,
	// including bodies over the size limit.
	ErrReadingBody = errors.New("error reading request body")
)
