package auth

import (
	"context"

	"pos-loyalty-gateway/internal/model"
	"pos-loyalty-gateway/internal/store"
)

// Resolver turns an inbound bearer token into a verified user.
type Resolver struct {
	codec *Codec
	creds store.CredentialStore
}

func NewResolver(codec *Codec, creds store.CredentialStore) *Resolver {
	return &Resolver{codec: codec, creds: creds}
}

// Resolve verifies the token and looks up its subject. Every failure
// mode (bad signature, malformed, expired, missing subject, subject no
// longer in the store) collapses into ErrInvalidToken so the caller
// cannot tell them apart.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims, err := r.codec.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	cred, err := r.creds.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u := cred.User
	return &u, nil
}

// RequireActive rejects disabled accounts. Kept separate from Resolve
// because the inactive case maps to a different HTTP status than token
// failures.
func RequireActive(u *model.User) error {
	if u.Disabled {
		return ErrInactiveAccount
	}
	return nil
}
