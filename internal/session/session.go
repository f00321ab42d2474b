// Package session owns the client-side authentication lifecycle: startup
// verification, login/registration/logout, silent token refresh, and the
// onboarding handshake. It is the error boundary for everything the api
// package returns; consumers only ever see session snapshots.
package session

import "github.com/wolfread/wolfread-go/internal/models"

// State names the controller's position in the auth lifecycle.
type State string

const (
	// StateUnknown is the initial state before the startup check has run.
	StateUnknown State = "unknown"
	// StateVerifying is the in-flight startup verification.
	StateVerifying State = "verifying"
	// StateAuthenticated means a populated user and a usable access token.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no session: logged out, never logged in, or expired.
	StateAnonymous State = "anonymous"
)

// Session is the snapshot handed to consumers. IsAuthenticated is derived:
// true iff User is present and Tokens carries an access token.
type Session struct {
	State           State
	User            *models.User
	Tokens          *models.TokenPair
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

func newInitialSession() Session {
	return Session{State: StateUnknown, IsLoading: true}
}

// emptySession is the post-logout state: everything cleared, not loading.
func emptySession() Session {
	return Session{State: StateAnonymous}
}
