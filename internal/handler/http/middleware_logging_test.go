// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/customer/1",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"id":1}`,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/customer/1"`,
				`"status":200`,
				`"duration":`,
				`"size":8`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/customer",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/customer/7",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "GET 500",
			method:          http.MethodGet,
			path:            "/customers",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"error":"Internal Server Error"}`,
			checkLogContains: []string{
				`"status":500`,
			},
		},
		{
			name:            "escaped path kept in uri",
			method:          http.MethodGet,
			path:            "/customers/lastName/Van%20Dyke",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/customers/lastName/Van%20Dyke"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusIsOK(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/ping", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}
