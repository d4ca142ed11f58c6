// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customers/internal/config"
	"github.com/MKhiriev/go-customers/internal/handler"
	"github.com/MKhiriev/go-customers/internal/logger"
	"github.com/MKhiriev/go-customers/internal/service"
)

func newTestHandlers(t *testing.T, addr string) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, config.StructuredConfig{
		Server:  config.Server{HTTPAddress: addr},
		Metrics: config.Metrics{Disabled: true},
	}, logger.Nop())
	require.NoError(t, err)

	return handlers
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "localhost:8080"), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NilHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8080", ShutdownTimeout: 3 * time.Second}

	s, err := NewServer(newTestHandlers(t, cfg.HTTPAddress), cfg, logger.Nop())
	require.NoError(t, err)

	srv, ok := s.(*server)
	require.True(t, ok)
	assert.Equal(t, "localhost:8080", srv.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, 3*time.Second, srv.httpServer.shutdownTimeout)
}

func TestNewHTTPServer_DefaultShutdownTimeout(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	assert.Equal(t, config.DefaultShutdownTimeout, h.shutdownTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t, cfg.HTTPAddress), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_ReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t, cfg.HTTPAddress), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())

	assert.Error(t, err)
}
