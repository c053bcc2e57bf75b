// Package session abstracts where the client keeps its bearer token.
// The token is injected state, not a package-level global: the API client
// and the auth controller both receive a Store at construction.
package session

// Store persists the bearer token between runs.
type Store interface {
	// Token returns the stored token, or "" when none is stored.
	Token() string

	// Save replaces the stored token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}
