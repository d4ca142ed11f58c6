// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-customers/internal/mapper"
	"github.com/MKhiriev/go-customers/internal/service"
	"github.com/MKhiriev/go-customers/internal/store"
	"github.com/MKhiriev/go-customers/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParam: http.StatusBadRequest,
	ErrReadingBody:      http.StatusBadRequest,

	validators.ErrEmptyBody:   http.StatusBadRequest,
	validators.ErrInvalidJSON: http.StatusBadRequest,
	validators.ErrInvalidID:   http.StatusBadRequest,
	validators.ErrEmptyName:   http.StatusBadRequest,

	mapper.ErrDecodingCustomer: http.StatusBadRequest,
	mapper.ErrEncodingCustomer: http.StatusInternalServerError,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrStorageUnavailable:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns what the client is told about err. Details of
// server-side failures stay in the log.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}
