package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pos-loyalty-gateway/internal/model"
	"pos-loyalty-gateway/internal/store"
)

// Store is an in-memory username -> credential map built once at
// process start. Nothing writes to it after construction, so reads
// need no locking.
type Store struct {
	users map[string]model.UserCredential
}

func NewStore(creds ...model.UserCredential) (*Store, error) {
	users := make(map[string]model.UserCredential, len(creds))
	for _, c := range creds {
		username := strings.TrimSpace(c.Username)
		if username == "" {
			return nil, errors.New("username_required")
		}
		if _, ok := users[username]; ok {
			return nil, fmt.Errorf("duplicate username %q", username)
		}
		c.Username = username
		users[username] = c
	}
	return &Store{users: users}, nil
}

// FromLists zips the two parallel config lists into a store. The lists
// must have the same length: silently truncating or misaligning them
// would pair usernames with the wrong hash.
func FromLists(usernames, hashes []string) (*Store, error) {
	if len(usernames) != len(hashes) {
		return nil, fmt.Errorf("usernames and hashed passwords differ in length: %d vs %d", len(usernames), len(hashes))
	}

	creds := make([]model.UserCredential, 0, len(usernames))
	for i, username := range usernames {
		username = strings.TrimSpace(username)
		creds = append(creds, model.UserCredential{
			User: model.User{
				Username: username,
				Email:    username + "@example.com",
				FullName: username + " Full Name",
			},
			PasswordHash: strings.TrimSpace(hashes[i]),
		})
	}
	return NewStore(creds...)
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.UserCredential, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}
