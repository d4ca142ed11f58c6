// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrParsingEnv wraps failures of the environment variable layer.
	ErrParsingEnv = errors.New("error getting env configs")
	// ErrParsingFlags wraps failures of the command-line layer.
	ErrParsingFlags = errors.New("error parsing flags")
	// ErrReadingJSON is returned when the JSON config file cannot be opened.
	ErrReadingJSON = errors.New("error reading a json file")
	// ErrDecodingJSON is returned when the JSON config file is malformed.
	ErrDecodingJSON = errors.New("error decoding json configs")
	// ErrInvalidConfig is returned when the merged configuration violates
	// one of its validation rules.
	ErrInvalidConfig = errors.New("invalid configuration")
)
