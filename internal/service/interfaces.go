package service

import (
	"context"

	"github.com/dmansurov/go-estate-api/models"
)

// AuthService owns the account lifecycle: signup with email verification,
// login, password reset, and the access/refresh token pair.
//
// Every user record it returns is sanitized: credential and secret fields
// are stripped before the record crosses the service boundary.
type AuthService interface {
	// Signup registers a new, unverified account and triggers the OTP email
	// asynchronously. Returns store.ErrEmailAlreadyExists for a duplicate
	// email.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login authenticates the account. On success it issues a token pair and
	// persists the refresh token, replacing any prior session. If the
	// password is correct but the email unverified, a fresh OTP is issued
	// and ErrEmailNotVerified is returned.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, models.User, error)

	// VerifyEmail consumes a pending OTP and marks the account verified.
	VerifyEmail(ctx context.Context, email, otp string) (models.User, error)

	// ResendOTP regenerates the verification code for an unverified account
	// and resends it with signup's fire-and-forget semantics.
	ResendOTP(ctx context.Context, email string) error

	// ForgotPassword issues a password-reset token and emails a reset link.
	// A missing account is not an error: the caller's response must be
	// identical either way. The reset email is sent synchronously and its
	// failure propagates.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a pending reset token and stores the new
	// password hash.
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error

	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID int64) error

	// RefreshTokens rotates the refresh token: the presented token must be
	// cryptographically valid and equal to the one currently stored for its
	// subject, and a new pair replaces it atomically from the caller's view.
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, models.User, error)

	// ParseAccessToken verifies an access token and returns its decoded
	// form. Any failure is normalized to ErrTokenIsExpiredOrInvalid.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PropertyService translates filter requests into store queries and shapes
// the paginated response.
type PropertyService interface {
	// FindAll returns one page of listings matching the filter plus
	// pagination metadata. An empty filter matches everything.
	FindAll(ctx context.Context, filter models.PropertyFilter) (models.PropertyPage, error)

	// FindByID returns the full listing record,
	// or store.ErrNoPropertyWasFound.
	FindByID(ctx context.Context, propertyID int64) (models.Property, error)
}

// EmailNotifier delivers transactional email for the auth flows.
// Implemented by the mailer package.
type EmailNotifier interface {
	SendOTPEmail(ctx context.Context, to, otp string) error
	SendPasswordResetEmail(ctx context.Context, to, resetToken string) error
}
