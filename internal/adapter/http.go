// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/utils"
	"github.com/MKhiriev/go-customers/models"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultRetryWaitTime = 100 * time.Millisecond
)

// Config configures the HTTP customer client.
type Config struct {
	// Address is the server base URL. A bare host:port gets an http scheme.
	Address string

	// Timeout bounds each attempt. Zero means 15s.
	Timeout time.Duration

	// RetryCount is the number of retries of idempotent requests that fail
	// in transport or with a 5xx status. POST is never retried.
	RetryCount    int
	RetryWaitTime time.Duration
}

type httpCustomerAPI struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCustomerAPI constructs an HTTP implementation of [CustomerAPI].
//
// Returns [ErrInvalidBaseURL] if cfg.Address is empty or cannot be parsed.
func NewHTTPCustomerAPI(cfg Config, logger *logger.Logger) (CustomerAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryWaitTime <= 0 {
		cfg.RetryWaitTime = defaultRetryWaitTime
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		AddRetryCondition(retryIdempotent)

	logger.Info().Str("baseURL", baseURL).Int("retries", cfg.RetryCount).Msg("customer API client created")

	return &httpCustomerAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp != nil && resp.Request != nil && resp.Request.Method == http.MethodPost {
		return false
	}
	return utils.RetryOnServerError(resp, err)
}

func (h *httpCustomerAPI) Get(ctx context.Context, id int64) (models.CustomerResource, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/customer/{id}")
	if err != nil {
		return models.CustomerResource{}, false, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusOK, http.StatusNoContent); err != nil {
		return models.CustomerResource{}, false, err
	}

	if resp.StatusCode() == http.StatusNoContent {
		h.logger.Debug().Int64("id", id).Msg("customer not found on server")
		return models.CustomerResource{}, false, nil
	}

	var customer models.CustomerResource
	if err = decode(resp, &customer); err != nil {
		return models.CustomerResource{}, false, err
	}
	return customer, true, nil
}

func (h *httpCustomerAPI) List(ctx context.Context) (models.CustomersResource, error) {
	return h.list(ctx, "/customers", nil)
}

func (h *httpCustomerAPI) FindByFirstName(ctx context.Context, firstName string) (models.CustomersResource, error) {
	return h.list(ctx, "/customers/firstName/{firstName}", map[string]string{"firstName": firstName})
}

func (h *httpCustomerAPI) FindByLastName(ctx context.Context, lastName string) (models.CustomersResource, error) {
	return h.list(ctx, "/customers/lastName/{lastName}", map[string]string{"lastName": lastName})
}

func (h *httpCustomerAPI) FindByName(ctx context.Context, firstName, lastName string) (models.CustomersResource, error) {
	return h.list(ctx, "/customers/firstName/{firstName}/lastName/{lastName}", map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
	})
}

func (h *httpCustomerAPI) list(ctx context.Context, route string, params map[string]string) (models.CustomersResource, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(params).
		Get(route)
	if err != nil {
		return models.CustomersResource{}, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusOK); err != nil {
		return models.CustomersResource{}, err
	}

	var customers models.CustomersResource
	if err = decode(resp, &customers); err != nil {
		return models.CustomersResource{}, err
	}
	return customers, nil
}

func (h *httpCustomerAPI) Create(ctx context.Context, customer models.Customer) (models.CustomerResource, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		Post("/customer")
	if err != nil {
		return models.CustomerResource{}, "", fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusCreated); err != nil {
		return models.CustomerResource{}, "", err
	}

	var created models.CustomerResource
	if err = decode(resp, &created); err != nil {
		return models.CustomerResource{}, "", err
	}

	location := resp.Header().Get("Location")
	h.logger.Debug().Int64("id", created.ID).Str("location", location).Msg("customer created")

	return created, location, nil
}

func (h *httpCustomerAPI) Update(ctx context.Context, id int64, customer models.Customer) (models.CustomerResource, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(customer).
		Put("/customer/{id}")
	if err != nil {
		return models.CustomerResource{}, fmt.Errorf("update customer request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusOK); err != nil {
		return models.CustomerResource{}, err
	}

	var updated models.CustomerResource
	if err = decode(resp, &updated); err != nil {
		return models.CustomerResource{}, err
	}
	return updated, nil
}

func (h *httpCustomerAPI) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/customer/{id}")
	if err != nil {
		return fmt.Errorf("delete customer request: %w", err)
	}

	return mapHTTPError(resp, http.StatusNoContent)
}

func (h *httpCustomerAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusOK); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpCustomerAPI) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp, http.StatusOK)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
