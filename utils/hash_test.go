package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, h.CheckPassword(hash, "secret1"))
	assert.False(t, h.CheckPassword(hash, "secret2"))
}

func TestNewHasherClampsCost(t *testing.T) {
	assert.Equal(t, DefaultHashCost, NewHasher(0).cost)
	assert.Equal(t, DefaultHashCost, NewHasher(99).cost)
	assert.Equal(t, 10, NewHasher(10).cost)
}

func TestPasswordTooLong(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).HashPassword(strings.Repeat("x", 80))
	assert.True(t, IsPasswordTooLong(err))
}
