// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package state issues and verifies the signed OAuth state parameter used by
// the provider authorization and the chat platform install flows.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "lighthouse"

const (
	PurposeBrandAuthorization = "brand-authorization"
	PurposeSlackInstall       = "slack-install"
)

var ErrInvalidState = errors.New("invalid oauth state")

type claims struct {
	jwt.RegisteredClaims
}

type Signer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// Issue signs subject for a single purpose. The install flow has no natural
// subject and passes an empty one.
func (s *Signer) Issue(purpose, subject string) (string, error) {
	now := s.now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{purpose},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state: %w", err)
	}

	return token, nil
}

// Verify checks signature, expiry and purpose and returns the subject.
func (s *Signer) Verify(purpose, token string) (string, error) {
	c := new(claims)

	_, err := jwt.ParseWithClaims(
		token,
		c,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(purpose),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	return c.Subject, nil
}

func NewSigner(secret string, lifetime time.Duration) *Signer {
	s := new(Signer)

	s.secret = []byte(secret)
	s.lifetime = lifetime
	s.now = time.Now

	return s
}
