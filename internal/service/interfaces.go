// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-customers/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/customer_service_mock.go -package=mock

// CustomerService is the business facade over the customer store used by the
// HTTP handlers.
type CustomerService interface {
	// FindByID returns the customer with the given id; found is false when
	// it does not exist.
	FindByID(ctx context.Context, id int64) (customer models.Customer, found bool, err error)

	FindByFirstName(ctx context.Context, firstName string) ([]models.Customer, error)
	FindByLastName(ctx context.Context, lastName string) ([]models.Customer, error)
	FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]models.Customer, error)
	FindAll(ctx context.Context) ([]models.Customer, error)

	// Save inserts a customer with a zero id and upserts any other.
	Save(ctx context.Context, customer models.Customer) (models.Customer, error)

	// Delete removes a customer. Deleting an absent customer succeeds.
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the customer store is reachable.
	Ping(ctx context.Context) error
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
