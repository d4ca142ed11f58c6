// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-customers/internal/logger"
)

func (h *Handler) getCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := h.customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customer, found, err := h.services.CustomerService.FindByID(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		log.Debug().Int64("id", id).Msg("customer not found")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeCustomer(w, r, customer, h.baseURL(r), http.StatusOK)
}

func (h *Handler) getCustomersByFirstName(w http.ResponseWriter, r *http.Request) {
	firstName, err := nameFromPath(r, "firstName")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customers, err := h.services.CustomerService.FindByFirstName(r.Context(), firstName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeCustomers(w, r, customers)
}

func (h *Handler) getCustomersByLastName(w http.ResponseWriter, r *http.Request) {
	lastName, err := nameFromPath(r, "lastName")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customers, err := h.services.CustomerService.FindByLastName(r.Context(), lastName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeCustomers(w, r, customers)
}

func (h *Handler) getCustomersByFirstNameAndLastName(w http.ResponseWriter, r *http.Request) {
	firstName, err := nameFromPath(r, "firstName")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lastName, err := nameFromPath(r, "lastName")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customers, err := h.services.CustomerService.FindByFirstNameAndLastName(r.Context(), firstName, lastName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeCustomers(w, r, customers)
}

func (h *Handler) getAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeCustomers(w, r, customers)
}

// deleteCustomer always answers 204 for a valid id: removing a customer that
// does not exist is not an error.
func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := h.customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// the lookup only feeds the log
	customer, found, err := h.services.CustomerService.FindByID(ctx, id)
	switch {
	case err != nil:
		log.Warn().Err(err).Int64("id", id).Msg("lookup before delete failed")
	case found:
		log.Info().Int64("id", id).Str("lastName", customer.LastName).Msg("deleting customer")
	default:
		log.Debug().Int64("id", id).Msg("customer to delete does not exist")
	}

	if err = h.services.CustomerService.Delete(ctx, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateCustomer replaces the customer under the path id with the request
// body. An unknown id creates the customer under that id.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := h.customerIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	body, err := h.readJSONBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, found, err := h.services.CustomerService.FindByID(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		log.Info().Int64("id", id).Msg("customer to update does not exist, it will be created")
	}

	customer, err := h.codec.JSONToCustomerWithID(id, body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.services.CustomerService.Save(ctx, customer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeCustomer(w, r, saved, h.baseURL(r), http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := h.readJSONBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customer, err := h.codec.JSONToCustomer(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.services.CustomerService.Save(ctx, customer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	requestURL := h.requestURL(r)
	w.Header().Set("Location", requestURL+"/"+strconv.FormatInt(saved.ID, 10))
	h.writeCustomer(w, r, saved, requestURL, http.StatusCreated)
}

// customerIDFromPath parses and validates the {id} path parameter.
func (h *Handler) customerIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, wrapPathParamError("id", raw, err)
	}

	if err = h.validator.Validate(r.Context(), id); err != nil {
		return 0, wrapPathParamError("id", raw, err)
	}

	return id, nil
}
