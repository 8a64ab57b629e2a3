package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
)

// otpRange covers the 4-digit codes [1000, 9999]. Collisions across users
// are acceptable: an OTP is only ever checked against its own account.
const (
	otpMin   = 1000
	otpRange = 9000
)

// resetTokenBytes gives the reset token 256 bits of entropy.
const resetTokenBytes = 32

// generateOTP returns a uniform random 4-digit decimal code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("error generating OTP: %w", err)
	}

	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}

// generateResetToken returns a cryptographically random opaque token,
// hex-encoded.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating reset token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
