// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RelSelf is the relation name of the link pointing back at the resource
// collection the payload was served from.
const RelSelf = "self"

// Link is a hypermedia reference attached to every encoded payload.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// CustomerResource is the wire form of a single customer.
type CustomerResource struct {
	Customer
	Links []Link `json:"links"`
}

// CustomersResource is the wire form of a customer list.
// Customers is always encoded as an array, never as null.
type CustomersResource struct {
	Customers []Customer `json:"customers"`
	Links     []Link     `json:"links"`
}

// ErrorResponse is written for every rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}
