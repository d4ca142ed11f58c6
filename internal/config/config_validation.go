// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` tags of its nested types before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
