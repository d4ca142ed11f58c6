// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Field names accepted by [RequestValidator.Validate].
const (
	// FieldID targets a customer id taken from the request path.
	FieldID = "id"

	// FieldName targets a first or last name taken from the request path.
	FieldName = "name"
)

// fieldRules maps each supported field onto its go-playground tag.
var fieldRules = map[string]string{
	FieldID:   "gt=0",
	FieldName: "required",
}

var fieldErrors = map[string]error{
	FieldID:   ErrInvalidID,
	FieldName: ErrEmptyName,
}

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [RequestValidator] backed by
// go-playground/validator.
func NewRequestValidator() RequestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a single path value. Exactly one field name selects the
// rule; int64 values default to [FieldID] and strings to [FieldName].
func (v *requestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var field string
	switch obj.(type) {
	case int64:
		field = FieldID
	case string:
		field = FieldName
	default:
		return ErrUnsupportedType
	}

	if len(fields) > 1 {
		return fmt.Errorf("%w: expected one field, got %d", ErrUnknownField, len(fields))
	}
	if len(fields) == 1 {
		field = fields[0]
	}

	rule, ok := fieldRules[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	if err := v.validate.VarCtx(ctx, obj, rule); err != nil {
		return fmt.Errorf("%w: %v", fieldErrors[field], obj)
	}

	return nil
}

func (v *requestValidator) ValidateJSON(_ context.Context, raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ErrEmptyBody
	}

	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidJSON
	}

	return nil
}
