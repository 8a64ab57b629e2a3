package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
	}{
		{name: "valid", req: SignupRequest{Email: "alice@example.com", Password: "secret123", Name: "Alice"}},
		{name: "missing email", req: SignupRequest{Password: "secret123", Name: "Alice"}, wantErr: ErrEmailRequired},
		{name: "bad email", req: SignupRequest{Email: "not-an-email", Password: "secret123", Name: "Alice"}, wantErr: ErrEmailInvalid},
		{name: "short password", req: SignupRequest{Email: "alice@example.com", Password: "abc", Name: "Alice"}, wantErr: ErrPasswordTooShort},
		{name: "missing name", req: SignupRequest{Email: "alice@example.com", Password: "secret123"}, wantErr: ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "bob@example.com", Password: "x"}.Validate())
	assert.ErrorIs(t, LoginRequest{Password: "x"}.Validate(), ErrEmailRequired)
	assert.ErrorIs(t, LoginRequest{Email: "bob@example.com"}.Validate(), ErrPasswordTooShort)
}

func TestVerifyEmailRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		otp     string
		wantErr bool
	}{
		{name: "valid", otp: "1234"},
		{name: "too short", otp: "123", wantErr: true},
		{name: "too long", otp: "12345", wantErr: true},
		{name: "non-digits", otp: "12ab", wantErr: true},
		{name: "empty", otp: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyEmailRequest{Email: "bob@example.com", OTP: tt.otp}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOTPInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	valid := ResetPasswordRequest{Email: "bob@example.com", ResetToken: "deadbeef", NewPassword: "secret123"}
	assert.NoError(t, valid.Validate())

	missingToken := valid
	missingToken.ResetToken = ""
	assert.ErrorIs(t, missingToken.Validate(), ErrTokenRequired)

	shortPassword := valid
	shortPassword.NewPassword = "abc"
	assert.ErrorIs(t, shortPassword.Validate(), ErrPasswordTooShort)
}

func TestRefreshTokenRequest_Validate(t *testing.T) {
	assert.NoError(t, RefreshTokenRequest{RefreshToken: "some-jwt"}.Validate())
	assert.ErrorIs(t, RefreshTokenRequest{}.Validate(), ErrTokenRequired)
}
