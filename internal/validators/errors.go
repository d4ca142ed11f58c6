// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBody   = errors.New("request body is empty")
	ErrInvalidJSON = errors.New("request body is not a valid JSON object")
	ErrInvalidID   = errors.New("invalid customer id")
	ErrEmptyName   = errors.New("name is required")
)
