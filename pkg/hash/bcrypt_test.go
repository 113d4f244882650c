package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("valid_password")
	require.NoError(t, err)

	assert.NotEqual(t, "valid_password", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("valid_password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("other_password")))
}
