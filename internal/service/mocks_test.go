package service

import (
	"context"
	"sync"
	"time"

	"github.com/dmansurov/go-estate-api/models"
)

// mockUserRepository implements store.UserRepository with per-method function
// fields. A method whose field is unset panics so a test cannot silently take
// a path it did not stage.
type mockUserRepository struct {
	createUserFn        func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn   func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn      func(ctx context.Context, userID int64) (models.User, error)
	setOTPFn            func(ctx context.Context, userID int64, otp string, expiresAt time.Time) error
	markEmailVerifiedFn func(ctx context.Context, userID int64) error
	setResetTokenFn     func(ctx context.Context, userID int64, resetToken string, expiresAt time.Time) error
	updatePasswordFn    func(ctx context.Context, userID int64, passwordHash string) error
	setRefreshTokenFn   func(ctx context.Context, userID int64, refreshToken string) error
	clearRefreshTokenFn func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn == nil {
		panic("unexpected call: CreateUser")
	}
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn == nil {
		panic("unexpected call: FindUserByEmail")
	}
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn == nil {
		panic("unexpected call: FindUserByID")
	}
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) SetOTP(ctx context.Context, userID int64, otp string, expiresAt time.Time) error {
	if m.setOTPFn == nil {
		panic("unexpected call: SetOTP")
	}
	return m.setOTPFn(ctx, userID, otp, expiresAt)
}

func (m *mockUserRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	if m.markEmailVerifiedFn == nil {
		panic("unexpected call: MarkEmailVerified")
	}
	return m.markEmailVerifiedFn(ctx, userID)
}

func (m *mockUserRepository) SetResetToken(ctx context.Context, userID int64, resetToken string, expiresAt time.Time) error {
	if m.setResetTokenFn == nil {
		panic("unexpected call: SetResetToken")
	}
	return m.setResetTokenFn(ctx, userID, resetToken, expiresAt)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFn == nil {
		panic("unexpected call: UpdatePassword")
	}
	return m.updatePasswordFn(ctx, userID, passwordHash)
}

func (m *mockUserRepository) SetRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	if m.setRefreshTokenFn == nil {
		panic("unexpected call: SetRefreshToken")
	}
	return m.setRefreshTokenFn(ctx, userID, refreshToken)
}

func (m *mockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	if m.clearRefreshTokenFn == nil {
		panic("unexpected call: ClearRefreshToken")
	}
	return m.clearRefreshTokenFn(ctx, userID)
}

// sentEmail records one delivery attempt made against the mock notifier.
type sentEmail struct {
	to    string
	token string
}

// mockNotifier implements EmailNotifier. OTP sends are pushed onto a buffered
// channel so tests can wait for the fire-and-forget goroutine; reset sends are
// recorded synchronously.
type mockNotifier struct {
	mu sync.Mutex

	otpSent  chan sentEmail
	otpErr   error
	resetErr error

	resetSent []sentEmail
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{otpSent: make(chan sentEmail, 4)}
}

func (m *mockNotifier) SendOTPEmail(_ context.Context, to, otp string) error {
	m.otpSent <- sentEmail{to: to, token: otp}
	return m.otpErr
}

func (m *mockNotifier) SendPasswordResetEmail(_ context.Context, to, resetToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resetSent = append(m.resetSent, sentEmail{to: to, token: resetToken})
	return nil
}

func (m *mockNotifier) resetEmails() []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentEmail(nil), m.resetSent...)
}

// waitForOTP blocks until the async OTP send lands or the timeout elapses.
func (m *mockNotifier) waitForOTP(timeout time.Duration) (sentEmail, bool) {
	select {
	case sent := <-m.otpSent:
		return sent, true
	case <-time.After(timeout):
		return sentEmail{}, false
	}
}

// mockPropertyRepository implements store.PropertyRepository with per-method
// function fields.
type mockPropertyRepository struct {
	findAllFn  func(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]models.Property, int64, error)
	findByIDFn func(ctx context.Context, propertyID int64) (models.Property, error)
}

func (m *mockPropertyRepository) FindAll(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]models.Property, int64, error) {
	if m.findAllFn == nil {
		panic("unexpected call: FindAll")
	}
	return m.findAllFn(ctx, filter, page, limit)
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, propertyID int64) (models.Property, error) {
	if m.findByIDFn == nil {
		panic("unexpected call: FindByID")
	}
	return m.findByIDFn(ctx, propertyID)
}
