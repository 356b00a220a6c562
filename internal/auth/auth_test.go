package auth

import (
	"context"
	"testing"
	"time"

	"pos-loyalty-gateway/internal/model"
	"pos-loyalty-gateway/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *memory.Store {
	t.Helper()

	aliceHash, err := HashPassword("swordfish")
	require.NoError(t, err)
	bobHash, err := HashPassword("letmein")
	require.NoError(t, err)

	s, err := memory.NewStore(
		model.UserCredential{
			User:         model.User{Username: "alice", Email: "alice@example.com", FullName: "Alice Liddell"},
			PasswordHash: aliceHash,
		},
		model.UserCredential{
			User:         model.User{Username: "bob", Disabled: true},
			PasswordHash: bobHash,
		},
	)
	require.NoError(t, err)
	return s
}

func TestAuthenticate_Success(t *testing.T) {
	ctx := context.Background()
	authn := NewAuthenticator(testStore(t))

	user, err := authn.Authenticate(ctx, "alice", "swordfish")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.Disabled)
}

func TestAuthenticate_UniformFailure(t *testing.T) {
	ctx := context.Background()
	authn := NewAuthenticator(testStore(t))

	// Wrong password and unknown user must be indistinguishable.
	_, wrongPw := authn.Authenticate(ctx, "alice", "not-the-password")
	_, unknown := authn.Authenticate(ctx, "ghost", "anything")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

func TestAuthenticate_DisabledUserStillAuthenticates(t *testing.T) {
	ctx := context.Background()
	authn := NewAuthenticator(testStore(t))

	// Disabled accounts are rejected at session resolution, not login.
	user, err := authn.Authenticate(ctx, "bob", "letmein")
	require.NoError(t, err)
	assert.True(t, user.Disabled)
}

func TestResolve_RoundTrip(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	resolver := NewResolver(codec, testStore(t))

	token, err := codec.Issue("alice", 30*time.Minute)
	require.NoError(t, err)

	user, err := resolver.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestResolve_UnknownSubject(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	resolver := NewResolver(codec, testStore(t))

	token, err := codec.Issue("ghost", 30*time.Minute)
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_EmptySubject(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	resolver := NewResolver(codec, testStore(t))

	token, err := codec.Issue("", 30*time.Minute)
	require.NoError(t, err)

	_, err = resolver.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_MalformedToken(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	resolver := NewResolver(codec, testStore(t))

	_, err = resolver.Resolve(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireActive(t *testing.T) {
	ctx := context.Background()
	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	resolver := NewResolver(codec, testStore(t))

	token, err := codec.Issue("bob", 30*time.Minute)
	require.NoError(t, err)

	// A disabled user resolves fine; only the active check rejects,
	// and with a distinct error.
	user, err := resolver.Resolve(ctx, token)
	require.NoError(t, err)

	err = RequireActive(user)
	assert.ErrorIs(t, err, ErrInactiveAccount)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	active := &model.User{Username: "alice"}
	assert.NoError(t, RequireActive(active))
}
