// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the customers HTTP API.
//
// [CustomerAPI] hides the REST routes and the wire format from callers.
// Transport failures and unexpected statuses are mapped by mapHTTPError onto
// the sentinel errors in errors.go, so callers can use [errors.Is] (e.g.
// [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-customers/models"
)

// CustomerAPI is a client of the customers service.
type CustomerAPI interface {
	// Get fetches a customer by id. found is false when the server answers
	// 204 No Content.
	Get(ctx context.Context, id int64) (customer models.CustomerResource, found bool, err error)

	// List returns every customer.
	List(ctx context.Context) (models.CustomersResource, error)

	// FindByFirstName, FindByLastName and FindByName return exact matches.
	// An empty result is not an error.
	FindByFirstName(ctx context.Context, firstName string) (models.CustomersResource, error)
	FindByLastName(ctx context.Context, lastName string) (models.CustomersResource, error)
	FindByName(ctx context.Context, firstName, lastName string) (models.CustomersResource, error)

	// Create stores a new customer. Any id on customer is ignored by the
	// server. location is the URL of the created resource.
	Create(ctx context.Context, customer models.Customer) (created models.CustomerResource, location string, err error)

	// Update replaces, or creates, the customer under id.
	Update(ctx context.Context, id int64, customer models.Customer) (models.CustomerResource, error)

	// Delete removes the customer. Deleting an unknown id succeeds.
	Delete(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Ping checks that the server and its store are reachable.
	Ping(ctx context.Context) error
}
