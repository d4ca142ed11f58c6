// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customers/internal/config"
	"github.com/MKhiriev/go-customers/internal/handler"
	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/service"
	"github.com/MKhiriev/go-customers/internal/store"
	"github.com/MKhiriev/go-customers/models"
)

// newCustomersServer runs the whole service on the memory store behind an
// httptest server.
func newCustomersServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App:     config.App{Version: "e2e"},
		Server:  config.Server{HTTPAddress: "localhost:0", RequestTimeout: 5 * time.Second},
		Metrics: config.Metrics{Path: "/metrics"},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newE2EClient(t *testing.T, srv *httptest.Server) CustomerAPI {
	t.Helper()

	api, err := NewHTTPCustomerAPI(Config{Address: srv.URL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return api
}

func TestE2E_CreateGetDeleteGet(t *testing.T) {
	srv := newCustomersServer(t)
	api := newE2EClient(t, srv)
	ctx := context.Background()

	created, location, err := api.Create(ctx, models.Customer{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, srv.URL+"/customer/"+strconv.FormatInt(created.ID, 10), location)
	require.Len(t, created.Links, 1)
	assert.Equal(t, srv.URL+"/customer", created.Links[0].Href)

	got, found, err := api.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.Customer, got.Customer)
	assert.Equal(t, srv.URL, got.Links[0].Href)

	require.NoError(t, api.Delete(ctx, created.ID))

	_, found, err = api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting again is still a success
	assert.NoError(t, api.Delete(ctx, created.ID))
}

func TestE2E_CreateAssignsDistinctIDs(t *testing.T) {
	api := newE2EClient(t, newCustomersServer(t))
	ctx := context.Background()

	first, _, err := api.Create(ctx, models.Customer{ID: 100, FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	second, _, err := api.Create(ctx, models.Customer{ID: 100, FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, int64(100), first.ID, "client supplied ids are ignored on create")
}

func TestE2E_UpdateAndSearch(t *testing.T) {
	api := newE2EClient(t, newCustomersServer(t))
	ctx := context.Background()

	jane, _, err := api.Create(ctx, models.Customer{FirstName: "Jane", LastName: "Doe", City: "Oslo"})
	require.NoError(t, err)
	_, _, err = api.Create(ctx, models.Customer{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	updated, err := api.Update(ctx, jane.ID, models.Customer{ID: 999, FirstName: "Janet", LastName: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, jane.ID, updated.ID, "path id wins over body id")
	assert.Equal(t, "Janet", updated.FirstName)

	byLast, err := api.FindByLastName(ctx, "Doe")
	require.NoError(t, err)
	assert.Len(t, byLast.Customers, 2)

	byFirst, err := api.FindByFirstName(ctx, "Jane")
	require.NoError(t, err)
	assert.Empty(t, byFirst.Customers)

	byName, err := api.FindByName(ctx, "Janet", "Doe")
	require.NoError(t, err)
	require.Len(t, byName.Customers, 1)
	assert.Equal(t, jane.ID, byName.Customers[0].ID)

	all, err := api.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Customers, 2)
}

func TestE2E_UpdateUnknownIDCreatesIt(t *testing.T) {
	api := newE2EClient(t, newCustomersServer(t))
	ctx := context.Background()

	upserted, err := api.Update(ctx, 41, models.Customer{FirstName: "Cy", LastName: "Young"})
	require.NoError(t, err)
	assert.Equal(t, int64(41), upserted.ID)

	got, found, err := api.Get(ctx, 41)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Cy", got.FirstName)

	// ids handed out afterwards do not collide with the upserted one
	created, _, err := api.Create(ctx, models.Customer{FirstName: "Al", LastName: "Bo"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(41))
}

func TestE2E_RejectsInvalidInput(t *testing.T) {
	srv := newCustomersServer(t)
	api := newE2EClient(t, srv)
	ctx := context.Background()

	_, _, err := api.Get(ctx, 0)
	assert.ErrorIs(t, err, ErrBadRequest)

	assert.ErrorIs(t, api.Delete(ctx, -1), ErrBadRequest)

	_, err = api.FindByFirstName(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound, "an empty segment matches no route")

	all, err := api.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all.Customers)
}

func TestE2E_VersionAndPing(t *testing.T) {
	api := newE2EClient(t, newCustomersServer(t))
	ctx := context.Background()

	version, err := api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", strings.TrimSpace(version))

	assert.NoError(t, api.Ping(ctx))
}
