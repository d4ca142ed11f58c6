// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics times the request under its chi route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{
			ResponseWriter: w,
		}

		h.metrics.RequestStarted()
		defer func() {
			h.metrics.RequestFinished(routePattern(r), r.Method, mw.statusCode(), time.Since(start))
		}()

		next.ServeHTTP(mw, r)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
