// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-customers/models"
)

// memoryCustomerRepository is an in-process [CustomerRepository] used when
// no DSN is configured and in tests.
type memoryCustomerRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Customer
	lastID int64
	now    func() time.Time
}

// NewMemoryCustomerRepository returns an empty in-memory repository.
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{
		items: make(map[int64]models.Customer),
		now:   time.Now,
	}
}

func (r *memoryCustomerRepository) FindByID(_ context.Context, id int64) (models.Customer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	return customer, ok, nil
}

func (r *memoryCustomerRepository) FindByFirstName(_ context.Context, firstName string) ([]models.Customer, error) {
	return r.filter(func(c models.Customer) bool { return c.FirstName == firstName }), nil
}

func (r *memoryCustomerRepository) FindByLastName(_ context.Context, lastName string) ([]models.Customer, error) {
	return r.filter(func(c models.Customer) bool { return c.LastName == lastName }), nil
}

func (r *memoryCustomerRepository) FindByFirstNameAndLastName(_ context.Context, firstName, lastName string) ([]models.Customer, error) {
	return r.filter(func(c models.Customer) bool {
		return c.FirstName == firstName && c.LastName == lastName
	}), nil
}

func (r *memoryCustomerRepository) FindAll(_ context.Context) ([]models.Customer, error) {
	return r.filter(func(models.Customer) bool { return true }), nil
}

// filter returns matching customers ordered by id; never nil.
func (r *memoryCustomerRepository) filter(match func(models.Customer) bool) []models.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Customer, 0, len(r.items))
	for _, customer := range r.items {
		if match(customer) {
			result = append(result, customer)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

func (r *memoryCustomerRepository) Save(_ context.Context, customer models.Customer) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if customer.IsNew() {
		r.lastID++
		customer.ID = r.lastID
		customer.CreatedAt = now
	} else {
		if existing, ok := r.items[customer.ID]; ok {
			customer.CreatedAt = existing.CreatedAt
		} else {
			customer.CreatedAt = now
		}
		// keep the sequence ahead of ids written through upsert
		if customer.ID > r.lastID {
			r.lastID = customer.ID
		}
	}
	customer.UpdatedAt = now

	r.items[customer.ID] = customer
	return customer, nil
}

func (r *memoryCustomerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *memoryCustomerRepository) Ping(_ context.Context) error {
	return nil
}
