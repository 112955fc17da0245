// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package installation

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/state"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

const welcomeMessage = "Hello! I'm Lighthouse. Once a workspace admin has routed a channel to a brand, " +
	"mention me there to ask questions about that brand's data. Use `/connect` in a routed channel " +
	"to link or relink the brand's analytics account."

const installedPage = `<html>
  <body>
    <h1>Successfully connected!</h1>
    <p>You can close this window and return to Slack.</p>
  </body>
</html>
`

// defaultChannels receive the welcome message, first match wins.
var defaultChannels = []string{"general", "random"}

// API is the browser side of the workspace install flow.
type API struct {
	registry  RegistryInterface
	installer InstallerInterface
	state     StateInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/slack/install", a.install)
	mux.Get("/slack/oauth/callback", a.callback)
}

func (a *API) install(w http.ResponseWriter, r *http.Request) {
	st, err := a.state.Issue(state.PurposeSlackInstall, "")
	if err != nil {
		a.logger.Errorf("failed to issue install state: %v", err)
		http.Error(w, "Installation could not be started.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, a.installer.AuthorizeURL(st), http.StatusFound)
}

func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		a.logger.Warnf("workspace install denied: %s", e)
		http.Error(w, "Installation was cancelled.", http.StatusBadRequest)
		return
	}

	if _, err := a.state.Verify(state.PurposeSlackInstall, q.Get("state")); err != nil {
		a.logger.Security().AuthnFailure("", "invalid slack install state")
		http.Error(w, "The installation link is invalid or has expired.", http.StatusBadRequest)
		return
	}

	code := q.Get("code")
	if code == "" {
		http.Error(w, "Authorization code is required.", http.StatusBadRequest)
		return
	}

	inst, err := a.installer.CompleteInstall(r.Context(), code)
	if err != nil {
		a.logger.Errorf("failed to complete workspace install: %v", err)
		http.Error(w, "Installation failed.", http.StatusBadGateway)
		return
	}

	err = a.registry.StoreInstallation(r.Context(), *inst)

	switch {
	case err == nil:
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "Please sign up with the email address of your Slack account, verify it, then install again.", http.StatusForbidden)
		return
	case errors.Is(err, ErrInvalidInstallation):
		a.logger.Errorf("incomplete installation: %v", err)
		http.Error(w, "Installation failed.", http.StatusBadGateway)
		return
	default:
		a.logger.Errorf("failed to store installation: %v", err)
		http.Error(w, "Installation failed.", http.StatusInternalServerError)
		return
	}

	a.welcome(r.Context(), inst)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(installedPage))
}

// welcome greets the workspace in its default channel, best effort.
func (a *API) welcome(ctx context.Context, inst *types.Installation) {
	channels, err := a.installer.ListChannels(ctx, inst.BotToken)
	if err != nil {
		a.logger.Warnf("failed to find a default channel in workspace %s: %v", inst.WorkspaceID, err)
		return
	}

	for _, name := range defaultChannels {
		for _, c := range channels {
			if c.Name != name {
				continue
			}

			if err := a.installer.PostMessage(ctx, inst.BotToken, c.ID, "", welcomeMessage); err != nil {
				a.logger.Warnf("failed to send welcome message to workspace %s: %v", inst.WorkspaceID, err)
			}

			return
		}
	}
}

func NewAPI(registry RegistryInterface, installer InstallerInterface, signer StateInterface, logger logging.LoggerInterface) *API {
	return &API{
		registry:  registry,
		installer: installer,
		state:     signer,
		logger:    logger,
	}
}
