package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, CheckPasswordHash(hash, "s3cret-password"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-password"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("budi123", "budi@example.com", "passw0rd123"))

	assert.Error(t, ValidateRegisterInput("ab", "budi@example.com", "passw0rd123"), "short username")
	assert.Error(t, ValidateRegisterInput("budi123", "not-an-email", "passw0rd123"), "bad email")
	assert.Error(t, ValidateRegisterInput("budi123", "budi@example.com", "sh0rt"), "short password")
	assert.Error(t, ValidateRegisterInput("budi123", "budi@example.com", "lettersonly"), "password needs a digit")
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi123", "whatever"))
	assert.Error(t, ValidateLoginInput("", "whatever"))
	assert.Error(t, ValidateLoginInput("budi123", ""))
}
