// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-customers/internal/config"
	"github.com/MKhiriev/go-customers/internal/handler/http"
	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/mapper"
	"github.com/MKhiriev/go-customers/internal/metrics"
	"github.com/MKhiriev/go-customers/internal/service"
	"github.com/MKhiriev/go-customers/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	var httpMetrics *metrics.HTTPMetrics
	if !cfg.Metrics.Disabled {
		httpMetrics = metrics.NewHTTPMetrics()
	}

	settings := http.Settings{
		BaseURL:        cfg.Server.BaseURL,
		RequestTimeout: cfg.Server.RequestTimeout,
		MetricsPath:    cfg.Metrics.Path,
	}
	if settings.MetricsPath == "" {
		settings.MetricsPath = config.DefaultMetricsPath
	}

	return &Handlers{
		HTTP: http.NewHandler(
			services,
			mapper.NewCustomerCodec(),
			validators.NewRequestValidator(),
			httpMetrics,
			settings,
			logger,
		),
	}, nil
}
