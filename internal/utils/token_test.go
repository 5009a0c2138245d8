package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_LengthAndDigits(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, otp)
		}
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		seen[otp] = true
	}
	assert.Greater(t, len(seen), 1, "generated codes were all identical")
}

func TestGenerateResetToken_HexEncoded(t *testing.T) {
	t.Parallel()

	token, err := GenerateResetToken(32)
	require.NoError(t, err)
	require.Len(t, token, 64)

	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestGenerateResetToken_Unique(t *testing.T) {
	t.Parallel()

	first, err := GenerateResetToken(32)
	require.NoError(t, err)
	second, err := GenerateResetToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
