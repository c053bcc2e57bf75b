package state

import (
	"context"
	"strings"
	"sync"

	"github.com/Shivam7262/Writely/internal/client/api"
	"github.com/Shivam7262/Writely/internal/client/session"
)

// AuthController drives AuthState: it runs API calls, keeps the session
// store in sync, and funnels every outcome through the reducer.
type AuthController struct {
	api    api.Client
	tokens session.Store

	mu    sync.Mutex
	state AuthState
}

// NewAuthController builds a controller seeded from the injected store.
// Loading starts true: until LoadUser has run, the session is undecided.
func NewAuthController(client api.Client, tokens session.Store) *AuthController {
	return &AuthController{
		api:    client,
		tokens: tokens,
		state:  AuthState{Token: tokens.Token(), Loading: true},
	}
}

// State returns a copy of the current AuthState.
func (c *AuthController) State() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// dispatch applies the storage side effect an action implies, then the pure
// reducer. Keeping persistence here leaves ReduceAuth deterministic.
func (c *AuthController) dispatch(action AuthAction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch a := action.(type) {
	case LoginSuccess:
		_ = c.tokens.Save(a.Token)
	case RegisterSuccess:
		_ = c.tokens.Save(a.Token)
	case AuthError, LoginFail, RegisterFail, Logout:
		_ = c.tokens.Clear()
	}

	c.state = ReduceAuth(c.state, action)
}

// LoadUser is the startup path: when a persisted token exists it eagerly
// fetches the profile. Failures stay silent — the user simply remains
// logged out, with no banner.
func (c *AuthController) LoadUser(ctx context.Context) {
	if c.tokens.Token() == "" {
		c.dispatch(AuthError{})
		return
	}

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.dispatch(AuthError{})
		return
	}
	c.dispatch(UserLoaded{User: user})
}

// Login authenticates in two phases: mint a token, then load the profile.
// Errors are swallowed into state (LoginFail) and never returned — callers
// read State().Err. Contrast with Register.
func (c *AuthController) Login(ctx context.Context, email, password string) {
	c.dispatch(ClearAuthError{})

	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		c.dispatch(LoginFail{Message: messageOf(err)})
		return
	}
	c.dispatch(LoginSuccess{Token: token})

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.dispatch(LoginFail{Message: messageOf(err)})
		return
	}
	c.dispatch(UserLoaded{User: user})
}

// Register mirrors Login but re-returns the error after dispatching
// RegisterFail, so the caller can branch (e.g. stay on the register form).
func (c *AuthController) Register(ctx context.Context, email, password string) error {
	c.dispatch(ClearAuthError{})

	token, err := c.api.Register(ctx, email, password)
	if err != nil {
		c.dispatch(RegisterFail{Message: messageOf(err)})
		return err
	}
	c.dispatch(RegisterSuccess{Token: token})

	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		c.dispatch(RegisterFail{Message: messageOf(err)})
		return err
	}
	c.dispatch(UserLoaded{User: user})
	return nil
}

// Logout clears the persisted token and all session state.
func (c *AuthController) Logout() {
	c.dispatch(Logout{})
}

// ClearError dismisses the error banner.
func (c *AuthController) ClearError() {
	c.dispatch(ClearAuthError{})
}

// Invalidate drops to logged-out silently. The view layer calls it when it
// notices the API client cleared the stored token after a 401.
func (c *AuthController) Invalidate() {
	c.dispatch(AuthError{})
}

// messageOf extracts the human-readable part of a normalized API error.
// Errors arrive as "<taxonomy>: <message>"; the banner shows only <message>.
func messageOf(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
