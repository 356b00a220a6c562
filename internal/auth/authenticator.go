package auth

import (
	"context"

	"pos-loyalty-gateway/internal/model"
	"pos-loyalty-gateway/internal/store"
)

// Authenticator validates username/password pairs against the
// credential store.
type Authenticator struct {
	creds store.CredentialStore
}

func NewAuthenticator(creds store.CredentialStore) *Authenticator {
	return &Authenticator{creds: creds}
}

// Authenticate returns the public user view on success. Unknown
// usernames and wrong passwords fail with the identical error.
// Disabled accounts still authenticate here: the active check happens
// at session resolution, so a disabled user can obtain a token but
// cannot use it.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	cred, err := a.creds.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(password, cred.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	u := cred.User
	return &u, nil
}
