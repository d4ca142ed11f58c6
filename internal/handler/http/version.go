// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-customers/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// ping reports whether the customer store is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CustomerService.Ping(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
