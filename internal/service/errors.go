package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotVerified is returned by login when the password is correct
	// but the account's email has not been confirmed yet. A fresh OTP has
	// already been issued by the time this error is returned.
	ErrEmailNotVerified = errors.New("email is not verified")

	// ErrEmailAlreadyVerified is returned by verification flows invoked on
	// an account that is already verified.
	ErrEmailAlreadyVerified = errors.New("email is already verified")

	// ErrInvalidOTP is returned when the presented OTP does not match the
	// pending one.
	ErrInvalidOTP = errors.New("invalid OTP")

	// ErrOTPExpired is returned when no OTP is pending or the pending one
	// has passed its expiry.
	ErrOTPExpired = errors.New("OTP has expired")

	// ErrInvalidResetToken is returned when the presented reset token does
	// not match the pending one.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrResetTokenExpired is returned when no reset token is pending or the
	// pending one has passed its expiry.
	ErrResetTokenExpired = errors.New("reset token has expired")

	// ErrInvalidRefreshToken covers every refresh failure: bad signature,
	// expiry, malformed payload, unknown or unverified user, and a token
	// superseded by a newer one. Collapsing the causes keeps the endpoint
	// from leaking session state.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrTokenIsExpiredOrInvalid is returned for access tokens that fail
	// signature, issuer, or expiry verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps low-level JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
