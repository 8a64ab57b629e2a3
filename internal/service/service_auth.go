package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dmansurov/go-estate-api/internal/config"
	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/store"
	"github.com/dmansurov/go-estate-api/internal/utils"
	"github.com/dmansurov/go-estate-api/models"
)

const (
	otpTTL   = 10 * time.Minute
	resetTTL = time.Hour
)

// authService is the concrete implementation of AuthService.
// It drives the per-user verification state machine using a UserRepository
// for persistence, bcrypt for password hashing, and HMAC-SHA256 JWTs for the
// access/refresh token pair.
type authService struct {
	// userRepository is the data-access layer used to create, look up, and
	// mutate user records.
	userRepository store.UserRepository

	// notifier delivers OTP and password-reset email.
	notifier EmailNotifier

	// accessSecret and refreshSecret sign the two token kinds. They are
	// distinct so an access token can never pass as a refresh token.
	accessSecret  string
	refreshSecret string

	// accessDuration and refreshDuration control the lifetimes of newly
	// issued tokens.
	accessDuration  time.Duration
	refreshDuration time.Duration

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// bcryptCost is the cost factor for password hashing.
	bcryptCost int

	// logger is the structured logger used outside of request scope
	// (background email sends).
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository and
// notifier and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, notifier EmailNotifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		notifier:        notifier,
		accessSecret:    cfg.AccessTokenSecret,
		refreshSecret:   cfg.RefreshTokenSecret,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		tokenIssuer:     cfg.TokenIssuer,
		bcryptCost:      cfg.BCryptCost,
		logger:          logger,
	}
}

// Signup registers a new account in the unverified state.
//
// The password is hashed with bcrypt, a 4-digit OTP with a 10-minute expiry
// is attached, and the record is persisted in one INSERT. The OTP email is
// fire-and-forget: the request does not wait for delivery and a failure is
// logged, never surfaced.
//
// Returns the sanitized user or:
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped error if hashing, OTP generation, or persistence fails.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		log.Err(err).Msg("OTP generation failed")
		return models.User{}, fmt.Errorf("OTP generation failed: %w", err)
	}
	otpExpiresAt := time.Now().Add(otpTTL)

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Password:     passwordHash,
		Name:         req.Name,
		OTP:          &otp,
		OTPExpiresAt: &otpExpiresAt,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendOTPAsync(created.Email, otp)

	return created.Sanitized(), nil
}

// Login authenticates an existing account.
//
// The lookup and the password check fail with the same ErrInvalidCredentials
// so a caller cannot tell which step rejected. A correct password against an
// unverified account issues a fresh OTP (overwriting any previous one),
// resends it fire-and-forget, and fails with ErrEmailNotVerified.
//
// On success a new token pair is issued and the refresh token is persisted,
// replacing any prior session.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.TokenPair{}, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.TokenPair{}, models.User{}, ErrInvalidCredentials
	}

	if !foundUser.EmailVerified {
		if err = a.issueOTP(ctx, foundUser); err != nil {
			return models.TokenPair{}, models.User{}, err
		}
		return models.TokenPair{}, models.User{}, ErrEmailNotVerified
	}

	pair, err := a.generateTokenPair(ctx, foundUser)
	if err != nil {
		return models.TokenPair{}, models.User{}, err
	}

	if err = a.userRepository.SetRefreshToken(ctx, foundUser.UserID, pair.RefreshToken.SignedString); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("persisting refresh token failed")
		return models.TokenPair{}, models.User{}, fmt.Errorf("persisting refresh token failed: %w", err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	return pair, foundUser.Sanitized(), nil
}

// VerifyEmail consumes a pending OTP.
//
// Returns the sanitized, now-verified user or:
//   - store.ErrNoUserWasFound if the email is unknown.
//   - ErrEmailAlreadyVerified if the account needs no verification.
//   - ErrOTPExpired if no OTP is pending or the pending one expired.
//   - ErrInvalidOTP if the presented code does not match.
func (a *authService) VerifyEmail(ctx context.Context, email, otp string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.EmailVerified {
		return models.User{}, ErrEmailAlreadyVerified
	}

	if foundUser.OTP == nil || foundUser.OTPExpiresAt == nil {
		return models.User{}, ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(*foundUser.OTP), []byte(otp)) != 1 {
		return models.User{}, ErrInvalidOTP
	}
	if foundUser.OTPExpiresAt.Before(time.Now()) {
		return models.User{}, ErrOTPExpired
	}

	if err = a.userRepository.MarkEmailVerified(ctx, foundUser.UserID); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("marking email verified failed")
		return models.User{}, fmt.Errorf("marking email verified failed: %w", err)
	}

	foundUser.EmailVerified = true
	foundUser.OTP = nil
	foundUser.OTPExpiresAt = nil

	return foundUser.Sanitized(), nil
}

// ResendOTP regenerates the verification code for an unverified account and
// resends it with the same fire-and-forget semantics as signup.
//
// Returns:
//   - store.ErrNoUserWasFound if the email is unknown.
//   - ErrEmailAlreadyVerified if the account needs no verification.
func (a *authService) ResendOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return err
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	return a.issueOTP(ctx, foundUser)
}

// ForgotPassword issues a password-reset token for the account, if one
// exists, and emails the reset link synchronously.
//
// A missing account returns nil: the endpoint's response must be identical
// whether or not the email is registered. Unlike the OTP mail, a reset email
// failure propagates to the caller.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// do not reveal whether the account exists
			return nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := generateResetToken()
	if err != nil {
		log.Err(err).Msg("reset token generation failed")
		return fmt.Errorf("reset token generation failed: %w", err)
	}

	if err = a.userRepository.SetResetToken(ctx, foundUser.UserID, resetToken, time.Now().Add(resetTTL)); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("persisting reset token failed")
		return fmt.Errorf("persisting reset token failed: %w", err)
	}

	if err = a.notifier.SendPasswordResetEmail(ctx, foundUser.Email, resetToken); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("sending password reset email failed")
		return fmt.Errorf("sending password reset email failed: %w", err)
	}

	return nil
}

// ResetPassword consumes a pending reset token and stores the new password.
//
// Returns:
//   - store.ErrNoUserWasFound if the email is unknown.
//   - ErrResetTokenExpired if no token is pending or the pending one expired.
//   - ErrInvalidResetToken if the presented token does not match.
func (a *authService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return err
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.ResetToken == nil || foundUser.ResetExpiresAt == nil {
		return ErrResetTokenExpired
	}
	if subtle.ConstantTimeCompare([]byte(*foundUser.ResetToken), []byte(resetToken)) != 1 {
		return ErrInvalidResetToken
	}
	if foundUser.ResetExpiresAt.Before(time.Now()) {
		return ErrResetTokenExpired
	}

	passwordHash, err := utils.HashPassword(newPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, foundUser.UserID, passwordHash); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating password failed")
		return fmt.Errorf("updating password failed: %w", err)
	}

	return nil
}

// Logout clears the stored refresh token unconditionally. Logging out a user
// with no active session, or one that no longer exists, is not an error.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil
		}
		log.Err(err).Int64("id", userID).Msg("clearing refresh token failed")
		return fmt.Errorf("clearing refresh token failed: %w", err)
	}

	return nil
}

// RefreshTokens rotates the refresh token.
//
// The presented token must verify against the refresh secret, carry both a
// subject and an email, reference an existing verified user, and equal the
// token currently stored for that user — presenting a superseded token is
// rejected even though it is cryptographically valid. On success a new pair
// is issued and the new refresh token replaces the old one.
//
// Every rejection is ErrInvalidRefreshToken.
func (a *authService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, models.User, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshSecret, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token failed verification")
		return models.TokenPair{}, models.User{}, ErrInvalidRefreshToken
	}
	if parsed.Email == "" {
		return models.TokenPair{}, models.User{}, ErrInvalidRefreshToken
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, models.User{}, ErrInvalidRefreshToken
		}
		log.Err(err).Int64("id", parsed.UserID).Msg("user search by id failed")
		return models.TokenPair{}, models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !foundUser.EmailVerified {
		return models.TokenPair{}, models.User{}, ErrInvalidRefreshToken
	}

	// single-session semantics: only the most recently issued refresh token
	// matches the stored copy
	if foundUser.RefreshToken == nil ||
		subtle.ConstantTimeCompare([]byte(*foundUser.RefreshToken), []byte(refreshToken)) != 1 {
		log.Warn().Int64("id", foundUser.UserID).Msg("presented refresh token does not match stored token")
		return models.TokenPair{}, models.User{}, ErrInvalidRefreshToken
	}

	pair, err := a.generateTokenPair(ctx, foundUser)
	if err != nil {
		return models.TokenPair{}, models.User{}, err
	}

	if err = a.userRepository.SetRefreshToken(ctx, foundUser.UserID, pair.RefreshToken.SignedString); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("persisting refresh token failed")
		return models.TokenPair{}, models.User{}, fmt.Errorf("persisting refresh token failed: %w", err)
	}

	return pair, foundUser.Sanitized(), nil
}

// ParseAccessToken validates and parses a raw access token string.
//
// Any validation failure (expired, wrong issuer, malformed, wrong secret) is
// normalized to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessSecret, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// generateTokenPair issues a fresh access+refresh pair for the user.
func (a *authService) generateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.accessDuration, a.accessSecret)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("access token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.refreshDuration, a.refreshSecret)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("refresh token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueOTP stores a fresh verification code for the user and resends it
// fire-and-forget.
func (a *authService) issueOTP(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	otp, err := generateOTP()
	if err != nil {
		log.Err(err).Msg("OTP generation failed")
		return fmt.Errorf("OTP generation failed: %w", err)
	}

	if err = a.userRepository.SetOTP(ctx, user.UserID, otp, time.Now().Add(otpTTL)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("persisting OTP failed")
		return fmt.Errorf("persisting OTP failed: %w", err)
	}

	a.sendOTPAsync(user.Email, otp)

	return nil
}

// sendOTPAsync delivers the OTP email from a separate goroutine. The request
// finishing does not wait for delivery; a failure is logged and swallowed.
// The caller can always re-request a code via resend-otp.
func (a *authService) sendOTPAsync(email, otp string) {
	ctx := a.logger.WithContext(context.Background())
	go func() {
		if err := a.notifier.SendOTPEmail(ctx, email, otp); err != nil {
			a.logger.Err(err).Str("email", email).Msg("failed to send OTP email")
		}
	}()
}
