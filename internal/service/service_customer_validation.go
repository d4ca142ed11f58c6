// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customers/internal/validators"
	"github.com/MKhiriev/go-customers/models"
)

// CustomerServiceWrapper defines middleware composition for CustomerService.
// Implementations wrap an existing CustomerService to add behavior such as
// logging or validating.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService // returns a decorated CustomerService applying additional behavior
}

// CustomerValidationService rejects ids and names the store cannot match
// before they reach the wrapped service. Rejections wrap
// [ErrInvalidDataProvided].
type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator
}

func NewCustomerValidationService(validator validators.Validator) CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validator,
	}
}

func (v *CustomerValidationService) invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

func (v *CustomerValidationService) FindByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return models.Customer{}, false, v.invalid(err)
	}

	return v.inner.FindByID(ctx, id)
}

func (v *CustomerValidationService) FindByFirstName(ctx context.Context, firstName string) ([]models.Customer, error) {
	if err := v.validator.Validate(ctx, firstName, validators.FieldName); err != nil {
		return nil, v.invalid(err)
	}

	return v.inner.FindByFirstName(ctx, firstName)
}

func (v *CustomerValidationService) FindByLastName(ctx context.Context, lastName string) ([]models.Customer, error) {
	if err := v.validator.Validate(ctx, lastName, validators.FieldName); err != nil {
		return nil, v.invalid(err)
	}

	return v.inner.FindByLastName(ctx, lastName)
}

func (v *CustomerValidationService) FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]models.Customer, error) {
	for _, name := range []string{firstName, lastName} {
		if err := v.validator.Validate(ctx, name, validators.FieldName); err != nil {
			return nil, v.invalid(err)
		}
	}

	return v.inner.FindByFirstNameAndLastName(ctx, firstName, lastName)
}

func (v *CustomerValidationService) FindAll(ctx context.Context) ([]models.Customer, error) {
	return v.inner.FindAll(ctx)
}

// Save accepts new customers (id 0) and customers with a positive id.
func (v *CustomerValidationService) Save(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if !customer.IsNew() {
		if err := v.validator.Validate(ctx, customer.ID, validators.FieldID); err != nil {
			return models.Customer{}, v.invalid(err)
		}
	}

	return v.inner.Save(ctx, customer)
}

func (v *CustomerValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return v.invalid(err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *CustomerValidationService) Ping(ctx context.Context) error {
	return v.inner.Ping(ctx)
}

func (v *CustomerValidationService) Wrap(wrapped CustomerService) CustomerService {
	v.inner = wrapped
	return v
}
