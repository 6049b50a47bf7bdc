// Package auth validates the session tokens the email add-in presents on
// every API call. Tokens are HMAC-signed JWTs carrying the user's ID; the
// signing secret is shared with the component that mints them at add-in
// sign-in.
package auth

import "errors"

// Error definitions for token validation.
var (
	// ErrInvalidToken is returned when a token fails signature or claim
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)
