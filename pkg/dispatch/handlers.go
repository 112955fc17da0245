// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const (
	eventAppUninstalled   = "app_uninstalled"
	eventTokensRevoked    = "tokens_revoked"
	eventChannelCreated   = "channel_created"
	eventChannelRename    = "channel_rename"
	eventChannelDeleted   = "channel_deleted"
	eventChannelArchive   = "channel_archive"
	eventChannelUnarchive = "channel_unarchive"

	retryHeader = "X-Slack-Retry-Num"
)

// API receives platform callbacks. Requests are acknowledged as soon as they
// are authenticated and parsed, the work happens in the background.
type API struct {
	dispatcher DispatcherInterface
	verifier   VerifierInterface

	// spawn runs background work, tests replace it to run inline
	spawn func(func())

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/slack/events", a.events)
	mux.Post("/slack/commands", a.commands)
}

func (a *API) events(w http.ResponseWriter, r *http.Request) {
	body, err := a.verifier.VerifyRequest(r)
	if err != nil {
		a.logger.Security().AuthnFailure("", "slack event signature rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	outer, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		a.logger.Debugf("failed to parse slack event: %v", err)
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	if outer.Type == slackevents.URLVerification {
		challenge, ok := outer.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			http.Error(w, "malformed challenge", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge.Challenge))
		return
	}

	w.WriteHeader(http.StatusOK)

	// retries only happen when an earlier delivery was not acknowledged in
	// time, that delivery is already being handled
	if r.Header.Get(retryHeader) != "" || outer.Type != slackevents.CallbackEvent {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	handle := a.route(outer)
	if handle == nil {
		return
	}

	a.spawn(func() {
		if err := handle(ctx); err != nil {
			a.logger.Errorf("failed to handle %s event for workspace %s: %v", outer.InnerEvent.Type, outer.TeamID, err)
		}
	})
}

// route maps a callback to the dispatcher operation handling it, nil when
// the event is of no interest.
func (a *API) route(outer slackevents.EventsAPIEvent) func(context.Context) error {
	switch outer.InnerEvent.Type {
	case string(slackevents.AppMention):
		ev, ok := outer.InnerEvent.Data.(*slackevents.AppMentionEvent)
		if !ok {
			return nil
		}

		mention := MentionEvent{
			WorkspaceID: outer.TeamID,
			ChannelID:   ev.Channel,
			UserID:      ev.User,
			Text:        ev.Text,
			TS:          ev.TimeStamp,
			ThreadTS:    ev.ThreadTimeStamp,
		}

		return func(ctx context.Context) error { return a.dispatcher.HandleMention(ctx, mention) }
	case eventAppUninstalled, eventTokensRevoked:
		uninstall := UninstallEvent{WorkspaceID: outer.TeamID, Type: outer.InnerEvent.Type}

		return func(ctx context.Context) error { return a.dispatcher.HandleUninstall(ctx, uninstall) }
	case eventChannelCreated, eventChannelRename, eventChannelDeleted, eventChannelArchive, eventChannelUnarchive:
		change := ChannelEvent{WorkspaceID: outer.TeamID, Type: outer.InnerEvent.Type}

		return func(ctx context.Context) error { return a.dispatcher.HandleChannelEvent(ctx, change) }
	default:
		return nil
	}
}

func (a *API) commands(w http.ResponseWriter, r *http.Request) {
	if _, err := a.verifier.VerifyRequest(r); err != nil {
		a.logger.Security().AuthnFailure("", "slack command signature rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		http.Error(w, "malformed command", http.StatusBadRequest)
		return
	}

	cmd := CommandEvent{
		WorkspaceID: s.TeamID,
		ChannelID:   s.ChannelID,
		UserID:      s.UserID,
		Command:     s.Command,
		Text:        s.Text,
		ResponseURL: s.ResponseURL,
	}

	if err := validateEvent(cmd); err != nil {
		a.logger.Debugf("rejected command: %v", err)
		http.Error(w, "unsupported command", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	ctx := context.WithoutCancel(r.Context())
	a.spawn(func() {
		if err := a.dispatcher.HandleCommand(ctx, cmd); err != nil {
			a.logger.Errorf("failed to handle %s for workspace %s: %v", cmd.Command, cmd.WorkspaceID, err)
		}
	})
}

func NewAPI(dispatcher DispatcherInterface, verifier VerifierInterface, logger logging.LoggerInterface) *API {
	return &API{
		dispatcher: dispatcher,
		verifier:   verifier,
		spawn:      func(f func()) { go f() },
		logger:     logger,
	}
}
