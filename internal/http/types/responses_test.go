// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		expected ErrorResponse
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			message:  "channel not found",
			expected: ErrorResponse{Status: http.StatusNotFound, Message: "channel not found"},
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			message:  "forbidden",
			expected: ErrorResponse{Status: http.StatusForbidden, Message: "forbidden"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := WriteError(w, test.status, test.message); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if w.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}

			var result ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, result)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteJSON(w, http.StatusOK, map[string]int{"added": 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Data   map[string]int `json:"data"`
		Status int            `json:"status"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Status != http.StatusOK || result.Data["added"] != 2 {
		t.Errorf("unexpected response %+v", result)
	}
}
