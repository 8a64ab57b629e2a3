package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Sanitized(t *testing.T) {
	otp := "1234"
	token := "secret-token"
	now := time.Now()

	u := User{
		UserID:         7,
		Email:          "bob@example.com",
		Password:       "bcrypt-hash",
		Name:           "Bob",
		EmailVerified:  true,
		OTP:            &otp,
		OTPExpiresAt:   &now,
		ResetToken:     &token,
		ResetExpiresAt: &now,
		RefreshToken:   &token,
	}

	s := u.Sanitized()

	assert.Empty(t, s.Password)
	assert.Nil(t, s.OTP)
	assert.Nil(t, s.OTPExpiresAt)
	assert.Nil(t, s.ResetToken)
	assert.Nil(t, s.ResetExpiresAt)
	assert.Nil(t, s.RefreshToken)

	// identity fields survive
	assert.Equal(t, u.UserID, s.UserID)
	assert.Equal(t, u.Email, s.Email)
	assert.Equal(t, u.Name, s.Name)
	assert.True(t, s.EmailVerified)

	// the original is untouched
	assert.Equal(t, "bcrypt-hash", u.Password)
	assert.NotNil(t, u.OTP)
}

func TestUser_JSONNeverCarriesSecrets(t *testing.T) {
	otp := "1234"
	token := "secret-token"

	u := User{
		UserID:       7,
		Email:        "bob@example.com",
		Password:     "bcrypt-hash",
		OTP:          &otp,
		ResetToken:   &token,
		RefreshToken: &token,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	body := string(data)
	assert.NotContains(t, body, "bcrypt-hash")
	assert.NotContains(t, body, "1234")
	assert.NotContains(t, body, "secret-token")
	assert.Contains(t, body, `"id":7`)
	assert.Contains(t, body, `"email":"bob@example.com"`)
}
