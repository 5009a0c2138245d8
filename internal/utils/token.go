package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
)

const otpDigits = "0123456789"

// GenerateOTP returns a fixed-length numeric code drawn from crypto/rand.
func GenerateOTP(length int) (string, error) {
	var code strings.Builder
	max := big.NewInt(int64(len(otpDigits)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code.WriteByte(otpDigits[n.Int64()])
	}
	return code.String(), nil
}

// GenerateResetToken returns size random bytes hex-encoded for URL transport.
func GenerateResetToken(size int) (string, error) {
	buffer := make([]byte, size)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}
