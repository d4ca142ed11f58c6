// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-customers/internal/utils"
)

const traceIDHeader = utils.TraceIDHeader

var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags the request with the caller's X-Trace-ID, or a fresh
// UUID, and attaches both the id and a logger carrying it to the request
// context. The id is echoed in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		_, ctx := h.logger.WithTraceID(r.Context(), traceID)
		ctx = utils.WithTraceID(ctx, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
