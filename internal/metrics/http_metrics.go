// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of the HTTP API.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "customers"

// HTTPMetrics times every request per route and counts server errors.
type HTTPMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
	inFlight        prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewHTTPMetrics registers the HTTP collectors with a fresh registry that also
// carries the Go runtime and process collectors.
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewHTTPMetricsWithRegistry(registry, registry)
}

// NewHTTPMetricsWithRegistry registers the HTTP collectors with registerer and
// serves whatever gatherer collects. Registering twice reuses the existing
// collectors.
func NewHTTPMetricsWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *HTTPMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &HTTPMetrics{
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"route", "method", "status"}),
		requestErrors: registerCounterVec(registerer, prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_request_errors_total",
			Help:      "Total number of HTTP requests answered with a 5xx status",
		}, []string{"route", "method"}),
		inFlight: registerGauge(registerer, prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
		gatherer: gatherer,
	}
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

// RequestStarted marks a request as in flight.
func (m *HTTPMetrics) RequestStarted() {
	m.inFlight.Inc()
}

// RequestFinished records a served request. route is the matched route
// pattern, not the raw path, so that ids do not explode label cardinality.
func (m *HTTPMetrics) RequestFinished(route, method string, status int, duration time.Duration) {
	m.inFlight.Dec()
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
	if status >= http.StatusInternalServerError {
		m.requestErrors.WithLabelValues(route, method).Inc()
	}
}

// Handler serves the prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
