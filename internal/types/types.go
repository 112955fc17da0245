// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Brand is a tenant holding its own credential pair against the analytics
// provider. AccessToken and AccessExpiresAt are either both set or both nil.
type Brand struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Website          string     `db:"website" json:"website"`
	OwnerUserID      string     `db:"owner_user_id" json:"owner_user_id"`
	AccessToken      *string    `db:"access_token" json:"-"`
	RefreshToken     *string    `db:"refresh_token" json:"-"`
	AccessExpiresAt  *time.Time `db:"access_expires_at" json:"access_expires_at,omitempty"`
	RefreshExpiresAt *time.Time `db:"refresh_expires_at" json:"refresh_expires_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// Connected reports whether the brand has ever completed an authorization.
func (b *Brand) Connected() bool {
	return b.RefreshToken != nil && *b.RefreshToken != ""
}

// TokenPair is the result of a successful token grant.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type Workspace struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	BotToken    string    `db:"bot_token" json:"-"`
	BotUserID   string    `db:"bot_user_id" json:"bot_user_id"`
	OwnerUserID string    `db:"owner_user_id" json:"owner_user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ChannelMapping routes a workspace channel to at most one brand. A nil
// BrandID means the channel is known but not yet assigned.
type ChannelMapping struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	ChannelID   string    `db:"channel_id" json:"channel_id"`
	ChannelName string    `db:"channel_name" json:"channel_name"`
	BrandID     *string   `db:"brand_id" json:"brand_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Membership struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Role        string    `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	Name          string    `db:"name" json:"name"`
	EmailVerified bool      `db:"email_verified" json:"email_verified"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Channel is a live channel as reported by the chat platform.
type Channel struct {
	ID       string
	Name     string
	IsMember bool
}

// Installation is what the chat platform hands over once a workspace
// completes the install flow.
type Installation struct {
	WorkspaceID    string `validate:"required"`
	WorkspaceName  string
	BotToken       string `validate:"required"`
	BotUserID      string
	InstallerID    string `validate:"required"`
	InstallerEmail string `validate:"required,email"`
}

// BotCredential is the subset of an installation needed to talk to the chat
// platform on behalf of a workspace.
type BotCredential struct {
	WorkspaceID string
	BotToken    string
	BotUserID   string
}
