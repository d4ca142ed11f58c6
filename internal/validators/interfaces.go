// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the service
// layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, optionally
//     scoped to named fields.
//   - RequestValidator: a Validator that can also check raw request bodies.
//
// Validation here is syntactic. A body that passes ValidateJSON is a
// well-formed JSON object; whether it decodes into a customer is decided by
// the codec.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// RequestValidator validates HTTP request input: path parameters through
// Validate and bodies through ValidateJSON.
type RequestValidator interface {
	Validator

	// ValidateJSON reports whether raw is a non-empty, well-formed JSON
	// object. It returns [ErrEmptyBody] or [ErrInvalidJSON] otherwise.
	ValidateJSON(ctx context.Context, raw []byte) error
}
