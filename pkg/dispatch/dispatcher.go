// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package dispatch turns chat platform events into brand scoped analytics
// queries and replies.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/credentials"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
)

type Dispatcher struct {
	registry    RegistryInterface
	resolver    ResolverInterface
	credentials CredentialsInterface
	analytics   AnalyticsInterface
	chat        ChatInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ DispatcherInterface = (*Dispatcher)(nil)

// HandleMention answers a question asked in a channel. Every outcome ends in
// a reply in the thread of the mention, the returned error only reports
// replies that could not be delivered.
func (d *Dispatcher) HandleMention(ctx context.Context, ev MentionEvent) error {
	ctx, span := d.tracer.Start(ctx, "dispatch.Dispatcher.HandleMention")
	defer span.End()

	if err := validateEvent(ev); err != nil {
		return err
	}

	bot, err := d.registry.FetchInstallation(ctx, ev.WorkspaceID)
	if err != nil {
		d.count("mention", "not_installed")
		return fmt.Errorf("no bot credential for workspace %s: %w", ev.WorkspaceID, err)
	}

	reply := func(text string) error {
		return d.reply(ctx, bot, ev.ChannelID, ev.Thread(), text)
	}

	question := stripMention(ev.Text)
	if question == "" {
		d.count("mention", "help")
		return reply(helpMessage(ev.UserID))
	}

	brandID, msg, ok := d.brand(ctx, "mention", ev.WorkspaceID, ev.ChannelID)
	if !ok {
		return reply(msg)
	}

	token, msg, ok := d.accessToken(ctx, "mention", brandID)
	if !ok {
		return reply(msg)
	}

	resp, err := d.analytics.Query(ctx, token, question)
	if err != nil {
		d.logger.Errorf("query for brand %s failed: %v", brandID, err)
		d.count("mention", "query_failed")
		return reply(transientMessage)
	}

	if resp.IsError {
		d.logger.Warnf("analytics service could not answer a question for brand %s", brandID)
		d.count("mention", "no_answer")
		return reply(noAnswerMessage)
	}

	text := compose(resp)
	if text == "" {
		d.count("mention", "no_answer")
		return reply(noAnswerMessage)
	}

	d.count("mention", "answered")

	return reply(text)
}

// brand resolves the brand of a channel, or the message explaining why there
// is none.
func (d *Dispatcher) brand(ctx context.Context, event, workspaceID, channelID string) (string, string, bool) {
	brandID, err := d.resolver.ResolveBrand(ctx, workspaceID, channelID)

	switch {
	case err == nil:
		return brandID, "", true
	case errors.Is(err, routing.ErrUnmapped), errors.Is(err, routing.ErrNotFound):
		d.count(event, "unmapped")
		return "", unmappedMessage, false
	default:
		d.logger.Errorf("failed to resolve brand of channel %s in workspace %s: %v", channelID, workspaceID, err)
		d.count(event, "error")
		return "", genericMessage, false
	}
}

func (d *Dispatcher) accessToken(ctx context.Context, event, brandID string) (string, string, bool) {
	token, err := d.credentials.GetValidAccessToken(ctx, brandID)

	switch {
	case err == nil:
		return token, "", true
	case errors.Is(err, credentials.ErrReauthRequired):
		d.count(event, "reauth_required")
		return "", reauthMessage, false
	case errors.Is(err, credentials.ErrNotFound):
		d.count(event, "unmapped")
		return "", unmappedMessage, false
	case errors.Is(err, credentials.ErrTransientProvider):
		d.logger.Errorf("failed to get a token for brand %s: %v", brandID, err)
		d.count(event, "token_failed")
		return "", transientMessage, false
	default:
		d.logger.Errorf("failed to get a token for brand %s: %v", brandID, err)
		d.count(event, "error")
		return "", genericMessage, false
	}
}

// reply posts text in chunks, in order. Chunks already posted stay posted
// when a later one fails.
func (d *Dispatcher) reply(ctx context.Context, bot *types.BotCredential, channelID, threadTS, text string) error {
	for i, c := range chunk(text, MaxChunkLength) {
		if err := d.chat.PostMessage(ctx, bot.BotToken, channelID, threadTS, c); err != nil {
			return fmt.Errorf("failed to post reply chunk %d in channel %s: %w", i+1, channelID, err)
		}
	}

	return nil
}

// HandleCommand answers a slash command privately to the user who ran it.
func (d *Dispatcher) HandleCommand(ctx context.Context, cmd CommandEvent) error {
	ctx, span := d.tracer.Start(ctx, "dispatch.Dispatcher.HandleCommand")
	defer span.End()

	if err := validateEvent(cmd); err != nil {
		return err
	}

	text := d.commandReply(ctx, cmd)

	if err := d.chat.Respond(ctx, cmd.ResponseURL, text); err != nil {
		return fmt.Errorf("failed to answer %s in workspace %s: %w", cmd.Command, cmd.WorkspaceID, err)
	}

	return nil
}

func (d *Dispatcher) commandReply(ctx context.Context, cmd CommandEvent) string {
	brandID, msg, ok := d.brand(ctx, "command", cmd.WorkspaceID, cmd.ChannelID)
	if !ok {
		return msg
	}

	switch cmd.Command {
	case CommandConnect:
		url, err := d.credentials.AuthorizationURL(ctx, brandID)
		if err != nil {
			d.logger.Errorf("failed to build authorization link for brand %s: %v", brandID, err)
			d.count("command", "error")
			return genericMessage
		}

		d.count("command", "connect")

		return connectMessage(url)
	default:
		if _, msg, ok := d.accessToken(ctx, "command", brandID); !ok {
			return msg
		}

		url, err := d.analytics.IntegrationsURL(ctx, brandID)
		if err != nil {
			d.logger.Errorf("failed to build integrations link for brand %s: %v", brandID, err)
			d.count("command", "error")
			return transientMessage
		}

		d.count("command", "integrations")

		return integrationsMessage(url)
	}
}

// HandleChannelEvent brings the channel mappings of a workspace in line with
// the platform after a channel was created, renamed, archived or deleted.
func (d *Dispatcher) HandleChannelEvent(ctx context.Context, ev ChannelEvent) error {
	ctx, span := d.tracer.Start(ctx, "dispatch.Dispatcher.HandleChannelEvent")
	defer span.End()

	if err := validateEvent(ev); err != nil {
		return err
	}

	if _, err := d.resolver.ReconcileWorkspace(ctx, ev.WorkspaceID); err != nil {
		d.count("channel_event", "error")
		return fmt.Errorf("failed to reconcile workspace %s after %s: %w", ev.WorkspaceID, ev.Type, err)
	}

	d.count("channel_event", "reconciled")

	return nil
}

func (d *Dispatcher) HandleUninstall(ctx context.Context, ev UninstallEvent) error {
	ctx, span := d.tracer.Start(ctx, "dispatch.Dispatcher.HandleUninstall")
	defer span.End()

	if err := validateEvent(ev); err != nil {
		return err
	}

	if err := d.registry.DeleteInstallation(ctx, ev.WorkspaceID); err != nil {
		d.count("uninstall", "error")
		return err
	}

	d.count("uninstall", "deleted")

	return nil
}

func (d *Dispatcher) count(event, outcome string) {
	if err := d.monitor.IncrementEventCounter(map[string]string{"event": event, "outcome": outcome}); err != nil {
		d.logger.Debugf("failed to record %s event: %v", event, err)
	}
}

func NewDispatcher(
	registry RegistryInterface,
	resolver ResolverInterface,
	credentials CredentialsInterface,
	analytics AnalyticsInterface,
	chat ChatInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Dispatcher {
	d := new(Dispatcher)

	d.registry = registry
	d.resolver = resolver
	d.credentials = credentials
	d.analytics = analytics
	d.chat = chat

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
