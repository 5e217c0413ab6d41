package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/vacation-server/utils"
)

func TestGenerateInviteToken(t *testing.T) {
	a, err := utils.GenerateInviteToken()
	require.NoError(t, err)
	b, err := utils.GenerateInviteToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	// 32 bytes, raw url-safe base64
	assert.Len(t, a, 43)
	assert.NotContains(t, a, "=")
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}
