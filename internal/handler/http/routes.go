// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// customer API
	router.Group(func(r chi.Router) {
		if h.metrics != nil {
			r.Use(h.withMetrics)
		}
		r.Use(withResponseHeaders, withGZip)
		if h.settings.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.settings.RequestTimeout))
		}
		r.Use(middleware.Recoverer)

		r.Get("/customer/{id}", h.getCustomerByID)
		r.Put("/customer/{id}", h.updateCustomer)
		r.Delete("/customer/{id}", h.deleteCustomer)
		r.Post("/customer", h.createCustomer)

		r.Get("/customers", h.getAllCustomers)
		r.Get("/customers/firstName/{firstName}", h.getCustomersByFirstName)
		r.Get("/customers/lastName/{lastName}", h.getCustomersByLastName)
		r.Get("/customers/firstName/{firstName}/lastName/{lastName}", h.getCustomersByFirstNameAndLastName)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/ping", h.ping)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method(http.MethodGet, h.settings.MetricsPath, h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
