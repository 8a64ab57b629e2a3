package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields (password hash, OTP, reset token, refresh token) must never
// be exposed outside trusted boundaries; they are excluded from JSON and
// additionally zeroed by Sanitized before a record leaves the service layer.
type User struct {
	// UserID is the unique identifier of the user, assigned by the store.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password. Never plaintext.
	Password string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// EmailVerified reports whether the account's email address has been
	// confirmed with an OTP.
	EmailVerified bool `json:"emailVerified"`

	// OTP is the pending email-verification code. Nil when no verification
	// is in progress. Set and cleared together with OTPExpiresAt.
	OTP *string `json:"-"`

	// OTPExpiresAt is the expiry instant of OTP.
	OTPExpiresAt *time.Time `json:"-"`

	// ResetToken is the pending password-reset token. Nil when no reset is
	// in progress. Set and cleared together with ResetExpiresAt.
	ResetToken *string `json:"-"`

	// ResetExpiresAt is the expiry instant of ResetToken.
	ResetExpiresAt *time.Time `json:"-"`

	// RefreshToken is the currently active refresh token. At most one per
	// user: overwritten on every login/refresh, nil after logout.
	RefreshToken *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with every credential and secret field
// zeroed. All user records returned to callers must pass through this method.
func (u User) Sanitized() User {
	u.Password = ""
	u.OTP = nil
	u.OTPExpiresAt = nil
	u.ResetToken = nil
	u.ResetExpiresAt = nil
	u.RefreshToken = nil
	return u
}
