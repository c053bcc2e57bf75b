// Package cli is the terminal rendition of the Writely views: a REPL whose
// commands read from the two state controllers and render their projections.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Shivam7262/Writely/internal/client/api"
	"github.com/Shivam7262/Writely/internal/client/config"
	"github.com/Shivam7262/Writely/internal/client/session"
	"github.com/Shivam7262/Writely/internal/client/state"
)

type App struct {
	config *config.Config
	tokens session.Store
	auth   *state.AuthController
	docs   *state.DocumentController
	reader *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	tokens := session.NewFileStore(cfg.TokenFile)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, tokens, cfg.RequestTimeout)

	return &App{
		config: cfg,
		tokens: tokens,
		auth:   state.NewAuthController(apiClient, tokens),
		docs:   state.NewDocumentController(apiClient),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	// startup path: a persisted token triggers an eager profile load;
	// failure leaves the user logged out without a banner
	a.auth.LoadUser(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().IsAuthenticated
}

// syncAuth notices when the API client has invalidated the stored token
// (any 401) and forces the session back to the login view.
func (a *App) syncAuth() {
	if a.auth.State().IsAuthenticated && a.tokens.Token() == "" {
		a.auth.Invalidate()
	}
}

// banner returns the pending error line, or "" when there is none. Both
// projections feed the same dismissible banner, auth first.
func (a *App) banner() string {
	if msg := a.auth.State().Err; msg != "" {
		return msg
	}
	return a.docs.State().Err
}

func (a *App) getStatus() string {
	s := a.auth.State()
	if s.IsAuthenticated && s.User != nil {
		return "(" + s.User.Email + ")"
	}
	return ""
}
