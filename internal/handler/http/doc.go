// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the customers service.
//
// It wires the chi routes of the customer API and the middlewares around
// them: request tracing, access logging, prometheus instrumentation, response
// headers, gzip compression, request timeouts and panic recovery. Request
// bodies are validated before the service layer is called.
package http
