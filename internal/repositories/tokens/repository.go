// Package tokens persists the client's credential state: the token pair
// issued by the backend and the one-shot onboarding signal. Storage is a
// key-value table in the local sqlite state database; the token pair is
// sealed before it touches disk.
package tokens

import (
	"context"
	"errors"

	"github.com/wolfread/wolfread-go/internal/models"
)

var ErrNilTokenPair = errors.New("nil token pair")

// Repository is the local credential store.
//
// Absence is not an error: LoadTokens returns (nil, nil) when no pair is
// stored or the stored value is corrupt. Errors are reserved for storage I/O.
type Repository interface {
	// SaveTokens replaces the stored pair wholesale; there is no merge.
	SaveTokens(ctx context.Context, pair *models.TokenPair) error

	// LoadTokens returns the stored pair, or nil when absent or unreadable.
	LoadTokens(ctx context.Context) (*models.TokenPair, error)

	// ClearTokens removes the stored pair.
	ClearTokens(ctx context.Context) error

	// SetOnboarding raises the one-shot onboarding signal.
	SetOnboarding(ctx context.Context) error

	// ConsumeOnboarding reads and clears the signal atomically. A second
	// consume before a new set returns false.
	ConsumeOnboarding(ctx context.Context) (bool, error)

	// Clear wipes everything: tokens and the onboarding signal.
	Clear(ctx context.Context) error
}
