// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/mapper"
	"github.com/MKhiriev/go-customers/internal/metrics"
	"github.com/MKhiriev/go-customers/internal/service"
	"github.com/MKhiriev/go-customers/internal/validators"
)

// Settings are the transport options of the HTTP handler.
type Settings struct {
	// BaseURL, when set, replaces scheme://host of the request in self links
	// and Location headers.
	BaseURL string

	// RequestTimeout bounds the context of every API request.
	RequestTimeout time.Duration

	// MetricsPath is where the prometheus exposition is served when metrics
	// are enabled.
	MetricsPath string
}

type Handler struct {
	services  *service.Services
	codec     mapper.CustomerCodec
	validator validators.RequestValidator

	// metrics is nil when instrumentation is disabled.
	metrics *metrics.HTTPMetrics

	settings Settings
	logger   *logger.Logger
}

func NewHandler(
	services *service.Services,
	codec mapper.CustomerCodec,
	validator validators.RequestValidator,
	metrics *metrics.HTTPMetrics,
	settings Settings,
	logger *logger.Logger,
) *Handler {
	logger.Info().Bool("metrics", metrics != nil).Msg("http handler created")
	return &Handler{
		services:  services,
		codec:     codec,
		validator: validator,
		metrics:   metrics,
		settings:  settings,
		logger:    logger,
	}
}
