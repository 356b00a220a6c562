package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("gxHovp^j8nv")
	assert.NoError(t, err)
	assert.NotEqual(t, "gxHovp^j8nv", digest)

	assert.True(t, CheckPassword("gxHovp^j8nv", digest))
	assert.False(t, CheckPassword("wrong", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("anything", ""))
}

func TestHashPassword_SaltedDigests(t *testing.T) {
	a, err := HashPassword("same-password")
	assert.NoError(t, err)
	b, err := HashPassword("same-password")
	assert.NoError(t, err)

	// Each digest carries its own salt.
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("same-password", a))
	assert.True(t, CheckPassword("same-password", b))
}
