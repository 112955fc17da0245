// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package slack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/slack-go/slack"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

const (
	authorizeURL  = "https://slack.com/oauth/v2/authorize"
	channelsLimit = 200
)

type Config struct {
	ClientID      string
	ClientSecret  string
	SigningSecret string
	RedirectURI   string
	// APIURL overrides the Web API base, it must end with a slash
	APIURL string
	Scopes []string
}

// Client wraps the Slack Web API. Calls are made with the bot token of the
// workspace they target, so a Client is shared by every installation.
type Client struct {
	config     Config
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) api(botToken string) *slack.Client {
	opts := []slack.Option{slack.OptionHTTPClient(c.httpClient)}
	if c.config.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(c.config.APIURL))
	}

	return slack.New(botToken, opts...)
}

// ListChannels returns every public, non archived channel of the workspace.
func (c *Client) ListChannels(ctx context.Context, botToken string) ([]types.Channel, error) {
	ctx, span := c.tracer.Start(ctx, "slack.Client.ListChannels")
	defer span.End()

	api := c.api(botToken)
	params := &slack.GetConversationsParameters{
		Types:           []string{"public_channel"},
		ExcludeArchived: true,
		Limit:           channelsLimit,
	}

	channels := make([]types.Channel, 0)
	for {
		page, cursor, err := api.GetConversationsContext(ctx, params)
		if err != nil {
			c.setAvailability(0)
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}

		for _, ch := range page {
			channels = append(channels, types.Channel{
				ID:       ch.ID,
				Name:     ch.Name,
				IsMember: ch.IsMember,
			})
		}

		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	c.setAvailability(1)

	return channels, nil
}

func (c *Client) JoinChannel(ctx context.Context, botToken, channelID string) error {
	ctx, span := c.tracer.Start(ctx, "slack.Client.JoinChannel")
	defer span.End()

	if _, _, _, err := c.api(botToken).JoinConversationContext(ctx, channelID); err != nil {
		return fmt.Errorf("failed to join channel %s: %w", channelID, err)
	}

	return nil
}

// PostMessage posts text to a channel, in the thread of threadTS when set.
func (c *Client) PostMessage(ctx context.Context, botToken, channelID, threadTS, text string) error {
	ctx, span := c.tracer.Start(ctx, "slack.Client.PostMessage")
	defer span.End()

	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}

	if _, _, err := c.api(botToken).PostMessageContext(ctx, channelID, opts...); err != nil {
		c.setAvailability(0)
		return fmt.Errorf("failed to post message: %w", err)
	}

	c.setAvailability(1)

	return nil
}

// Respond answers a slash command through its response URL, visible to the
// invoking user only.
func (c *Client) Respond(ctx context.Context, responseURL, text string) error {
	ctx, span := c.tracer.Start(ctx, "slack.Client.Respond")
	defer span.End()

	msg := &slack.WebhookMessage{
		Text:         text,
		ResponseType: "ephemeral",
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, responseURL, c.httpClient, msg); err != nil {
		return fmt.Errorf("failed to respond to command: %w", err)
	}

	return nil
}

// UserEmail returns the email Slack verified for the user.
func (c *Client) UserEmail(ctx context.Context, botToken, userID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "slack.Client.UserEmail")
	defer span.End()

	user, err := c.api(botToken).GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	if user.Profile.Email == "" {
		return "", fmt.Errorf("user %s has no visible email", userID)
	}

	return user.Profile.Email, nil
}

// AuthorizeURL is the first leg of the workspace install flow.
func (c *Client) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.config.ClientID)
	params.Set("scope", strings.Join(c.config.Scopes, ","))
	params.Set("state", state)

	if c.config.RedirectURI != "" {
		params.Set("redirect_uri", c.config.RedirectURI)
	}

	return authorizeURL + "?" + params.Encode()
}

// CompleteInstall exchanges the install code and resolves the installer
// email with the freshly issued bot token.
func (c *Client) CompleteInstall(ctx context.Context, code string) (*types.Installation, error) {
	ctx, span := c.tracer.Start(ctx, "slack.Client.CompleteInstall")
	defer span.End()

	resp, err := slack.GetOAuthV2ResponseContext(ctx, c.httpClient, c.config.ClientID, c.config.ClientSecret, code, c.config.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange install code: %w", err)
	}

	email, err := c.UserEmail(ctx, resp.AccessToken, resp.AuthedUser.ID)
	if err != nil {
		return nil, err
	}

	return &types.Installation{
		WorkspaceID:    resp.Team.ID,
		WorkspaceName:  resp.Team.Name,
		BotToken:       resp.AccessToken,
		BotUserID:      resp.BotUserID,
		InstallerID:    resp.AuthedUser.ID,
		InstallerEmail: email,
	}, nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "slack"}, v); err != nil {
		c.logger.Debugf("failed to record availability: %v", err)
	}
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.config = cfg
	c.httpClient = tracing.NewHTTPClient(0)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
