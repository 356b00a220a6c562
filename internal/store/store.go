package store

import (
	"context"
	"errors"

	"pos-loyalty-gateway/internal/model"
)

var ErrNotFound = errors.New("not_found")

// CredentialStore is the read-only user directory consulted during
// authentication and session resolution. Implementations must be safe
// for unsynchronized concurrent reads.
type CredentialStore interface {
	GetUserByUsername(ctx context.Context, username string) (*model.UserCredential, error)
}
