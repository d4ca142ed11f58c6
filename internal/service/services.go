// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-customers/internal/config"
	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/store"
	"github.com/MKhiriev/go-customers/internal/validators"
	"github.com/MKhiriev/go-customers/models"
)

type Services struct {
	CustomerService CustomerService
	AppInfoService  AppInfoService
}

// NewServices wires the service layer on top of storages. The customer
// service is wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	customerService := NewCustomerValidationService(validators.NewRequestValidator()).
		Wrap(NewCustomerService(storages.CustomerRepository, logger))

	return &Services{
		CustomerService: customerService,
		AppInfoService:  appInfo,
	}, nil
}
