package store

import (
	"context"
	"time"

	"github.com/dmansurov/go-estate-api/models"
)

// UserRepository is the data-access layer for user accounts. All state
// transitions are single-row updates; the store's per-row atomicity is the
// only synchronization required.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered under email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetOTP stores a fresh verification code and its expiry, overwriting
	// any previous pending code.
	SetOTP(ctx context.Context, userID int64, otp string, expiresAt time.Time) error

	// MarkEmailVerified flips the account to verified and clears the
	// pending OTP and its expiry in the same statement.
	MarkEmailVerified(ctx context.Context, userID int64) error

	// SetResetToken stores a password-reset token and its expiry.
	SetResetToken(ctx context.Context, userID int64, resetToken string, expiresAt time.Time) error

	// UpdatePassword stores a new password hash and clears the reset token
	// and its expiry in the same statement.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// SetRefreshToken stores the single active refresh token for the user,
	// replacing any prior one.
	SetRefreshToken(ctx context.Context, userID int64, refreshToken string) error

	// ClearRefreshToken removes the stored refresh token. Idempotent.
	ClearRefreshToken(ctx context.Context, userID int64) error
}

// PropertyRepository is the read-only data-access layer for listings.
type PropertyRepository interface {
	// FindAll returns one page of listings matching the filter, ordered by
	// creation time (most recent first), plus the total matching count
	// computed independently of pagination.
	FindAll(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]models.Property, int64, error)

	// FindByID returns the full listing record, or ErrNoPropertyWasFound.
	FindByID(ctx context.Context, propertyID int64) (models.Property, error)
}
