package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiryClaim = errors.New("access token carries no exp claim")

// TokenPair is the credential pair issued at login/registration.
// Access is a short-lived JWT; Refresh is exchanged for a new pair.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether the pair carries no usable credential.
func (tp *TokenPair) Empty() bool {
	return tp == nil || (tp.Access == "" && tp.Refresh == "")
}

// AccessExpiresAt extracts the exp claim from the access token without
// verifying the signature. Verification belongs to the server; the client
// only needs the timestamp to schedule a refresh ahead of expiry.
func (tp *TokenPair) AccessExpiresAt() (time.Time, error) {
	if tp == nil || tp.Access == "" {
		return time.Time{}, ErrNoExpiryClaim
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tp.Access, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}
	return exp.Time, nil
}
