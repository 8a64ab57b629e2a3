package models

import (
	"errors"
	"fmt"
	"net/mail"
)

// MinPasswordLength is the minimum accepted length for a new password,
// on signup as well as on password reset.
const MinPasswordLength = 6

// Validation errors returned by the request Validate methods. The HTTP layer
// rejects a request with 400 Bad Request before it reaches service logic.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not a valid address")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrNameRequired     = errors.New("name is required")
	ErrOTPInvalid       = errors.New("otp must be a 4-digit code")
	ErrTokenRequired    = errors.New("token is required")
)

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate checks the signup payload and returns the first violation found.
func (r SignupRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if r.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload. The password is only checked for
// presence: its correctness is the auth service's concern.
func (r LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return ErrPasswordTooShort
	}
	return nil
}

// VerifyEmailRequest is the body of POST /auth/verify-email.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Validate checks the verification payload: a valid email and a 4-digit OTP.
func (r VerifyEmailRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if !isFourDigits(r.OTP) {
		return ErrOTPInvalid
	}
	return nil
}

// ResendOTPRequest is the body of POST /auth/resend-otp.
type ResendOTPRequest struct {
	Email string `json:"email"`
}

// Validate checks that a well-formed email was supplied.
func (r ResendOTPRequest) Validate() error {
	return validateEmail(r.Email)
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Validate checks that a well-formed email was supplied.
func (r ForgotPasswordRequest) Validate() error {
	return validateEmail(r.Email)
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

// Validate checks the reset payload: email, non-empty token, password length.
func (r ResetPasswordRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.ResetToken == "" {
		return ErrTokenRequired
	}
	if len(r.NewPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Validate checks that a token was supplied at all; cryptographic
// verification happens in the auth service.
func (r RefreshTokenRequest) Validate() error {
	if r.RefreshToken == "" {
		return ErrTokenRequired
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}
	return nil
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
