package auth

import (
	"strings"
	"testing"

	"mentalk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	hashed, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "password", hashed)

	assert.True(t, hasher.Check("password", hashed))
	assert.False(t, hasher.Check("wrong-password", hashed))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	first, err := hasher.Hash("password")
	require.NoError(t, err)

	second, err := hasher.Hash("password")
	require.NoError(t, err)

	// Each hash carries its own salt, so the outputs never collide.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password", first))
	assert.True(t, hasher.Check("password", second))
}

func TestBcryptHasher_HashFormat(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	hashed, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$2"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hashed, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.True(t, hasher.Check("password", hashed))
}
