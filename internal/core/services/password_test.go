package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, hasher.Compare(hash, "pw1"))
	assert.ErrorIs(t, hasher.Compare(hash, "pw2"), domain.ErrInvalidCredentials)

	again, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}

func TestBcryptHasher_Length(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	err := NewBcryptHasher(bcrypt.MinCost).Compare("not-a-hash", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
