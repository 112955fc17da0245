// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard json body of every failed admin API call.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Response wraps successful admin API payloads.
type Response struct {
	Data    any    `json:"data"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes data wrapped in a Response.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	return write(w, status, &Response{Data: data, Status: status})
}

// WriteError writes an ErrorResponse, message is shown to the caller as is.
func WriteError(w http.ResponseWriter, status int, message string) error {
	return write(w, status, &ErrorResponse{Status: status, Message: message})
}

func write(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}
