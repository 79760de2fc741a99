package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)
}

func TestHashPassword_Empty(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestComparePassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("s3cret")
	assert.NoError(t, err)

	assert.True(t, service.ComparePassword(hash, "s3cret"))
	assert.False(t, service.ComparePassword(hash, "wrong"))
	assert.False(t, service.ComparePassword("not-a-hash", "s3cret"))
}
