// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Customer is a single customer record owned by the storage layer.
// Handlers only ever hold request-scoped copies of it.
type Customer struct {
	// ID is assigned by the store on creation and never changes afterwards.
	// Zero means the customer has not been persisted yet.
	ID int64 `json:"id" db:"id"`

	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`

	// Email, Phone and City are optional profile fields.
	Email string `json:"email,omitempty" db:"email"`
	Phone string `json:"phone,omitempty" db:"phone"`
	City  string `json:"city,omitempty" db:"city"`

	// CreatedAt and UpdatedAt are managed by the store.
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// IsNew reports whether the customer still waits for a store-assigned ID.
func (c Customer) IsNew() bool {
	return c.ID == 0
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
