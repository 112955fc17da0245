// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSysStartup        = "sys_startup"
	eventSysShutdown       = "sys_shutdown"
	eventAuthzFail         = "authz_fail"
	eventAuthnFail         = "authn_fail"
	eventCredentialRevoked = "authn_token_revoked"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.emit(eventSysStartup, "", "", "system started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.emit(eventSysShutdown, "", "", "system shutdown")
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.emit(eventAuthzFail, subject, resource, "authorization failed")
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.emit(eventAuthnFail, subject, reason, "authentication failed")
}

func (s *SecurityLogger) CredentialRevoked(subject, resource string) {
	s.emit(eventCredentialRevoked, subject, resource, "credential no longer usable")
}

func (s *SecurityLogger) emit(event, subject, resource, description string) {
	fields := []zap.Field{
		zap.String("type", "security"),
		zap.String("event", event),
	}
	if subject != "" {
		fields = append(fields, zap.String("subject", subject))
	}
	if resource != "" {
		fields = append(fields, zap.String("resource", resource))
	}

	s.l.Warn(description, fields...)
}

func newSecurityLogger(z *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: z.Named("security")}
}
