// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/utils"
	"github.com/MKhiriev/go-customers/models"
)

// maxBodyBytes caps customer payloads.
const maxBodyBytes = 1 << 20

func wrapPathParamError(name, raw string, err error) error {
	return fmt.Errorf("%w %s=%q: %w", ErrInvalidPathParam, name, raw, err)
}

// nameFromPath returns the unescaped value of a name path parameter. chi
// routes on the raw path only when the request carries one.
func nameFromPath(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return raw, nil
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", wrapPathParamError(param, raw, err)
	}

	return name, nil
}

// readJSONBody reads the request body and checks that it is a JSON object.
func (h *Handler) readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingBody, err)
	}

	if err = h.validator.ValidateJSON(r.Context(), body); err != nil {
		return nil, err
	}

	return body, nil
}

// baseURL is the root every self link is built from.
func (h *Handler) baseURL(r *http.Request) string {
	if h.settings.BaseURL != "" {
		return strings.TrimRight(h.settings.BaseURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

// requestURL is the absolute URL of r without its query.
func (h *Handler) requestURL(r *http.Request) string {
	return h.baseURL(r) + strings.TrimRight(r.URL.Path, "/")
}

func (h *Handler) writeCustomer(w http.ResponseWriter, r *http.Request, customer models.Customer, selfURL string, status int) {
	body, err := h.codec.CustomerToJSON(customer, selfURL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeBody(w, r, body, status)
}

func (h *Handler) writeCustomers(w http.ResponseWriter, r *http.Request, customers []models.Customer) {
	body, err := h.codec.CustomersToJSON(customers, h.baseURL(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeBody(w, r, body, http.StatusOK)
}

func writeBody(w http.ResponseWriter, r *http.Request, body string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}

// writeError answers with the status mapped from err and an
// [models.ErrorResponse].
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: errorMessage(err, status)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
