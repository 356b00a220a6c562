package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrInvalidToken covers every token verification failure: bad
	// signature, malformed structure, expiry, missing subject, and
	// unknown subject.
	ErrInvalidToken = errors.New("invalid_token")

	// ErrInactiveAccount is returned for a valid token whose user is
	// disabled.
	ErrInactiveAccount = errors.New("inactive_account")
)
