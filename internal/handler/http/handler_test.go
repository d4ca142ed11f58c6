// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/mapper"
	"github.com/MKhiriev/go-customers/internal/metrics"
	"github.com/MKhiriev/go-customers/internal/mock"
	"github.com/MKhiriev/go-customers/internal/service"
	"github.com/MKhiriev/go-customers/internal/validators"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler creates a Handler with a nop logger for middleware tests.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

type apiFixture struct {
	customers *mock.MockCustomerService
	appInfo   *mock.MockAppInfoService
	registry  *prometheus.Registry
	handler   *Handler
	router    http.Handler
}

// newAPIFixture wires a Handler with mocked services, the real codec and
// validator and a private metrics registry.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	customers := mock.NewMockCustomerService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	registry := prometheus.NewRegistry()

	h := NewHandler(
		&service.Services{CustomerService: customers, AppInfoService: appInfo},
		mapper.NewCustomerCodec(),
		validators.NewRequestValidator(),
		metrics.NewHTTPMetricsWithRegistry(registry, registry),
		Settings{RequestTimeout: time.Second, MetricsPath: "/metrics"},
		logger.Nop(),
	)

	return &apiFixture{
		customers: customers,
		appInfo:   appInfo,
		registry:  registry,
		handler:   h,
		router:    h.Init(),
	}
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	codec := mapper.NewCustomerCodec()
	validator := validators.NewRequestValidator()
	settings := Settings{BaseURL: "https://api.example.com", MetricsPath: "/m"}
	log := logger.Nop()

	h := NewHandler(svc, codec, validator, nil, settings, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, codec, h.codec)
	assert.Equal(t, validator, h.validator)
	assert.Nil(t, h.metrics)
	assert.Equal(t, settings, h.settings)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, nil, nil, Settings{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, nil, nil, Settings{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// baseURL / requestURL
// ─────────────────────────────────────────────

func TestHandler_BaseURL(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		target     string
		forwarded  string
		want       string
	}{
		{
			name:   "built from request host",
			target: "http://customers.local:8080/customers",
			want:   "http://customers.local:8080",
		},
		{
			name:      "forwarded proto wins",
			target:    "http://customers.local/customers",
			forwarded: "https",
			want:      "https://customers.local",
		},
		{
			name:       "configured base url wins",
			configured: "https://api.example.com/",
			target:     "http://customers.local/customers",
			want:       "https://api.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{settings: Settings{BaseURL: tt.configured}}
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tt.forwarded)
			}

			assert.Equal(t, tt.want, h.baseURL(req))
		})
	}
}

func TestHandler_RequestURL_TrimsTrailingSlash(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "http://customers.local/customer/?x=1", nil)

	assert.Equal(t, "http://customers.local/customer", h.requestURL(req))
}
