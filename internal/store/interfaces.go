// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-customers/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/customer_repository_mock.go -package=mock

// CustomerRepository persists [models.Customer] records.
//
// Lookups by id report absence through the boolean result instead of an
// error. List lookups return an empty, non-nil slice when nothing matches.
type CustomerRepository interface {
	// FindByID returns the customer with the given id. found is false when
	// no such customer exists.
	FindByID(ctx context.Context, id int64) (customer models.Customer, found bool, err error)

	// FindByFirstName returns customers whose first name equals firstName exactly.
	FindByFirstName(ctx context.Context, firstName string) ([]models.Customer, error)

	// FindByLastName returns customers whose last name equals lastName exactly.
	FindByLastName(ctx context.Context, lastName string) ([]models.Customer, error)

	// FindByFirstNameAndLastName returns customers matching both names exactly.
	FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]models.Customer, error)

	// FindAll returns every stored customer ordered by id.
	FindAll(ctx context.Context) ([]models.Customer, error)

	// Save inserts a new customer when customer.ID is zero and assigns its id.
	// Otherwise the record with customer.ID is replaced, or created with that
	// id when it does not exist yet.
	Save(ctx context.Context, customer models.Customer) (models.Customer, error)

	// Delete removes the customer with the given id. Deleting an absent
	// customer is not an error.
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the underlying storage is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
