// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-customers/models"
)

// mapHTTPError returns nil for any status in expected and a wrapped sentinel
// error otherwise.
func mapHTTPError(resp *resty.Response, expected ...int) error {
	for _, status := range expected {
		if resp.StatusCode() == status {
			return nil
		}
	}

	message := errorMessage(resp)

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, resp.Request.Method, resp.Request.URL)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, resp.StatusCode(), message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}

// errorMessage extracts the "error" field of a models.ErrorResponse body,
// falling back to the raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
