// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper converts customers to and from their JSON wire form.
//
// Every encoded payload carries a "self" link. Decoding never trusts the id
// sent by the client: new customers get id 0 so the store assigns one, and
// updates take the id from the request path.
package mapper

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customers/models"
)

var (
	ErrEncodingCustomer = errors.New("error encoding customer")
	ErrDecodingCustomer = errors.New("error decoding customer")
)

// CustomerCodec is the conversion contract used by the HTTP handlers.
type CustomerCodec interface {
	CustomerToJSON(customer models.Customer, selfURL string) (string, error)
	CustomersToJSON(customers []models.Customer, selfURL string) (string, error)
	JSONToCustomer(raw []byte) (models.Customer, error)
	JSONToCustomerWithID(id int64, raw []byte) (models.Customer, error)
}

type jsonCustomerCodec struct{}

// NewCustomerCodec returns the JSON [CustomerCodec].
func NewCustomerCodec() CustomerCodec {
	return jsonCustomerCodec{}
}

func selfLinks(selfURL string) []models.Link {
	return []models.Link{{Rel: models.RelSelf, Href: selfURL}}
}

// CustomerToJSON encodes customer as a [models.CustomerResource].
func (jsonCustomerCodec) CustomerToJSON(customer models.Customer, selfURL string) (string, error) {
	out, err := json.Marshal(models.CustomerResource{
		Customer: customer,
		Links:    selfLinks(selfURL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingCustomer, err)
	}

	return string(out), nil
}

// CustomersToJSON encodes customers as a [models.CustomersResource]. A nil
// slice is written as an empty array.
func (jsonCustomerCodec) CustomersToJSON(customers []models.Customer, selfURL string) (string, error) {
	if customers == nil {
		customers = []models.Customer{}
	}

	out, err := json.Marshal(models.CustomersResource{
		Customers: customers,
		Links:     selfLinks(selfURL),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingCustomer, err)
	}

	return string(out), nil
}

// JSONToCustomer decodes a new customer. Any id in raw is discarded.
func (c jsonCustomerCodec) JSONToCustomer(raw []byte) (models.Customer, error) {
	return c.JSONToCustomerWithID(0, raw)
}

// JSONToCustomerWithID decodes raw and keys the result by id, overriding
// whatever id the body carries.
func (jsonCustomerCodec) JSONToCustomerWithID(id int64, raw []byte) (models.Customer, error) {
	var customer models.Customer
	if err := json.Unmarshal(raw, &customer); err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrDecodingCustomer, err)
	}

	customer.ID = id
	return customer, nil
}
