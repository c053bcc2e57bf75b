// Package state holds the client's two state projections — auth and
// documents — as pure reducers over tagged action variants, plus the
// controllers that run API effects and dispatch the results.
package state

import "github.com/Shivam7262/Writely/internal/client/models"

// AuthState is the client-side projection of the session. Token mirrors the
// injected session store; the server stays the source of truth.
type AuthState struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
	Err             string
}

// AuthAction is the closed set of auth transitions. Each variant is a
// struct so payloads stay typed and the reducer can switch exhaustively.
type AuthAction interface{ isAuthAction() }

// UserLoaded completes the two-phase login: only now does the session
// count as authenticated.
type UserLoaded struct{ User *models.User }

// LoginSuccess records a freshly minted token. The session is deliberately
// NOT authenticated yet; a follow-up profile fetch must land first.
type LoginSuccess struct{ Token string }

// RegisterSuccess is the registration twin of LoginSuccess.
type RegisterSuccess struct{ Token string }

// AuthError resets to logged-out without a visible message. It is the
// silent path for "no token present" and failed startup profile loads.
type AuthError struct{}

// LoginFail resets to logged-out with a user-visible message.
type LoginFail struct{ Message string }

// RegisterFail resets to logged-out with a user-visible message.
type RegisterFail struct{ Message string }

// Logout clears the whole session.
type Logout struct{}

// ClearAuthError dismisses the error banner.
type ClearAuthError struct{}

func (UserLoaded) isAuthAction()      {}
func (LoginSuccess) isAuthAction()    {}
func (RegisterSuccess) isAuthAction() {}
func (AuthError) isAuthAction()       {}
func (LoginFail) isAuthAction()       {}
func (RegisterFail) isAuthAction()    {}
func (Logout) isAuthAction()          {}
func (ClearAuthError) isAuthAction()  {}

// ReduceAuth is the pure transition function. Token persistence is a
// controller concern; this function only maps (state, action) to state.
func ReduceAuth(state AuthState, action AuthAction) AuthState {
	switch a := action.(type) {
	case UserLoaded:
		state.IsAuthenticated = true
		state.Loading = false
		state.User = a.User
		return state

	case LoginSuccess:
		state.Token = a.Token
		state.IsAuthenticated = false
		state.Loading = true
		state.User = nil
		state.Err = ""
		return state

	case RegisterSuccess:
		state.Token = a.Token
		state.IsAuthenticated = false
		state.Loading = true
		state.User = nil
		state.Err = ""
		return state

	case AuthError:
		return AuthState{}

	case LoginFail:
		return AuthState{Err: a.Message}

	case RegisterFail:
		return AuthState{Err: a.Message}

	case Logout:
		return AuthState{}

	case ClearAuthError:
		state.Err = ""
		return state

	default:
		return state
	}
}
