// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import "time"

type Config struct {
	APIURL       string
	AppURL       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	APIKey       string
	Scopes       []string
	Timezone     string
	Currency     string

	ExchangeTimeout time.Duration
	QueryTimeout    time.Duration
}

// Grant is a token response from the provider token endpoint.
type Grant struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

type QueryRequest struct {
	Question string `json:"question"`
}

type QueryResponse struct {
	IsError             bool            `json:"isError"`
	Error               string          `json:"error,omitempty"`
	AssistantConclusion string          `json:"assistantConclusion,omitempty"`
	Responses           []QueryFragment `json:"responses,omitempty"`
}

type QueryFragment struct {
	Assistant string `json:"assistant,omitempty"`
}

type registerAccountRequest struct {
	AppID       string `json:"appId"`
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
}

type signInRequest struct {
	AccountID string `json:"accountId"`
	AppID     string `json:"appId"`
}

type signInResponse struct {
	Token string `json:"token"`
}
