// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/store"
	"github.com/MKhiriev/go-customers/models"
)

type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (s *customerService) FindByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	return s.customerRepository.FindByID(ctx, id)
}

func (s *customerService) FindByFirstName(ctx context.Context, firstName string) ([]models.Customer, error) {
	return s.customerRepository.FindByFirstName(ctx, firstName)
}

func (s *customerService) FindByLastName(ctx context.Context, lastName string) ([]models.Customer, error) {
	return s.customerRepository.FindByLastName(ctx, lastName)
}

func (s *customerService) FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]models.Customer, error) {
	return s.customerRepository.FindByFirstNameAndLastName(ctx, firstName, lastName)
}

func (s *customerService) FindAll(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepository.FindAll(ctx)
}

func (s *customerService) Save(ctx context.Context, customer models.Customer) (models.Customer, error) {
	saved, err := s.customerRepository.Save(ctx, customer)
	if err != nil {
		return models.Customer{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("id", saved.ID).
		Bool("created", customer.IsNew()).
		Msg("customer saved")

	return saved, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.customerRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("customer deleted")
	return nil
}

func (s *customerService) Ping(ctx context.Context) error {
	return s.customerRepository.Ping(ctx)
}
