// Package api implements the WolfRead REST API client. Each method is a
// stateless mapping from domain parameters to a single HTTP call: no retries,
// no caching, no session state. Session orchestration lives in the session
// package.
package api

import (
	"context"

	"github.com/wolfread/wolfread-go/internal/models"
)

// Client is the surface of the WolfRead backend the rest of the application
// talks to.
//
// Contract:
//   - Register/Login: create or authenticate an account, returning the
//     profile and a fresh token pair.
//   - Logout: invalidate the session server-side; callers treat failures as
//     best-effort and proceed with local cleanup regardless.
//   - CheckStatus: report whether the given access token is still accepted.
//   - RefreshToken: exchange a refresh token for a new pair. When the server
//     does not rotate the refresh token, the old one is carried over.
//   - GetProfile/UpdateProfile: read and update the profile record.
//   - ChangePassword: on success the server invalidates every token issued
//     for the account.
//   - CheckPreferences: report whether the preference-collection flow should
//     be shown to the user.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, access string) error
	CheckStatus(ctx context.Context, access string) (*StatusResult, error)
	RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error)
	GetProfile(ctx context.Context, access string) (*models.User, error)
	UpdateProfile(ctx context.Context, fields ProfileUpdate, access string) (*models.User, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest, access string) (string, error)
	CheckPreferences(ctx context.Context, access string) (bool, error)
}
