// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/slack-go/slack"
)

const maxBodySize = 1 << 20

var ErrInvalidSignature = errors.New("invalid slack request signature")

// VerifyRequest checks the request signature and returns the raw body. The
// body is put back on the request so form parsing still works afterwards.
func (c *Client) VerifyRequest(r *http.Request) ([]byte, error) {
	verifier, err := slack.NewSecretsVerifier(r.Header, c.config.SigningSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, err
	}

	if err := verifier.Ensure(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
