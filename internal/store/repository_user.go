package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and the single-row conditional
// updates that drive the verification, reset, and session state machines.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new, unverified user record and returns the fully
// populated [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Password, user.Name, user.OTP, user.OTPExpiresAt)

	created, err := scanUser(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: email already registered")
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, err
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered under the given email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user with the given identifier.
//
// Error handling is identical to [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// SetOTP stores a fresh verification code and expiry for the user,
// overwriting any previous pending code.
func (r *userRepository) SetOTP(ctx context.Context, userID int64, otp string, expiresAt time.Time) error {
	return r.execUserUpdate(ctx, "SetOTP", setUserOTP, userID, otp, expiresAt)
}

// MarkEmailVerified flips the account to verified and clears the pending OTP
// state in one statement, keeping the both-set-or-both-null invariant.
func (r *userRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	return r.execUserUpdate(ctx, "MarkEmailVerified", markUserEmailVerified, userID)
}

// SetResetToken stores a password-reset token and expiry for the user.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, resetToken string, expiresAt time.Time) error {
	return r.execUserUpdate(ctx, "SetResetToken", setUserResetToken, userID, resetToken, expiresAt)
}

// UpdatePassword stores a new password hash and clears the reset token state
// in one statement.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.execUserUpdate(ctx, "UpdatePassword", updateUserPassword, userID, passwordHash)
}

// SetRefreshToken stores the single active refresh token for the user.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	return r.execUserUpdate(ctx, "SetRefreshToken", setUserRefreshToken, userID, refreshToken)
}

// ClearRefreshToken removes the stored refresh token. Clearing an already
// empty token is not an error.
func (r *userRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	return r.execUserUpdate(ctx, "ClearRefreshToken", clearUserRefreshToken, userID)
}

// execUserUpdate runs a single-row user UPDATE and maps a zero affected-row
// count to [ErrNoUserWasFound].
func (r *userRepository) execUserUpdate(ctx context.Context, op, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error: unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error: rows affected unavailable")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.Password,
		&u.Name,
		&u.EmailVerified,
		&u.OTP,
		&u.OTPExpiresAt,
		&u.ResetToken,
		&u.ResetExpiresAt,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
