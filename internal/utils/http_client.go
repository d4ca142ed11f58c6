// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between services.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Every request forwards the trace id stored in its context (see
// [WithTraceID]) in the X-Trace-ID header.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("https://example.com/customers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

// RetryOnServerError retries requests that failed in transport or were
// answered with a 5xx status.
func RetryOnServerError(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

func propagateTraceID(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get(TraceIDHeader) != "" {
		return nil
	}
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
