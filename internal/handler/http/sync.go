// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
)

const triggerPointHeader = "X-Trigger-Point"

// packetStatusResponse is the body of the status route.
type packetStatusResponse struct {
	RegistrationID string `json:"registrationId"`
	Status         string `json:"status"`
}

// syncPackets accepts a JSON string holding the base64 sealed envelope and
// answers with the authority's per-item verdicts. Envelope and validation
// failures are reported inside the response body with status 200.
func (h *Handler) syncPackets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	machineID, found := utils.GetMachineIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncPackets").Msg("no machine ID was given")
		http.Error(w, "no machine ID was given", http.StatusUnauthorized)
		return
	}

	var payload string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.syncPackets").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response := h.services.AuthorityService.ProcessSync(ctx, machineID, payload)
	utils.WriteJSON(w, response, http.StatusOK)
}

// packetStatus reports the last verdict recorded for a registration id.
func (h *Handler) packetStatus(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "registrationID")

	status, found := h.services.AuthorityService.Status(registrationID)
	if !found {
		http.Error(w, "packet not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, packetStatusResponse{RegistrationID: registrationID, Status: status}, http.StatusOK)
}
