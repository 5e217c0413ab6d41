package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/vacation-server/utils"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := utils.GenerateToken("42")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = utils.VerifyToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenNoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := utils.GenerateToken("42")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, utils.CheckPassword(hash, "hunter22"))
	assert.False(t, utils.CheckPassword(hash, "hunter23"))
}
