package http

import (
	"context"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/service"
	"github.com/dmansurov/go-estate-api/models"
	"github.com/go-chi/chi/v5"
)

// mockAuthService implements service.AuthService with per-method function
// fields. A method whose field is unset panics so a test cannot silently take
// a path it did not stage.
type mockAuthService struct {
	signupFn           func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn            func(ctx context.Context, req models.LoginRequest) (models.TokenPair, models.User, error)
	verifyEmailFn      func(ctx context.Context, email, otp string) (models.User, error)
	resendOTPFn        func(ctx context.Context, email string) error
	forgotPasswordFn   func(ctx context.Context, email string) error
	resetPasswordFn    func(ctx context.Context, email, resetToken, newPassword string) error
	logoutFn           func(ctx context.Context, userID int64) error
	refreshTokensFn    func(ctx context.Context, refreshToken string) (models.TokenPair, models.User, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if m.signupFn == nil {
		panic("unexpected call: Signup")
	}
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, models.User, error) {
	if m.loginFn == nil {
		panic("unexpected call: Login")
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, email, otp string) (models.User, error) {
	if m.verifyEmailFn == nil {
		panic("unexpected call: VerifyEmail")
	}
	return m.verifyEmailFn(ctx, email, otp)
}

func (m *mockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.resendOTPFn == nil {
		panic("unexpected call: ResendOTP")
	}
	return m.resendOTPFn(ctx, email)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.forgotPasswordFn == nil {
		panic("unexpected call: ForgotPassword")
	}
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	if m.resetPasswordFn == nil {
		panic("unexpected call: ResetPassword")
	}
	return m.resetPasswordFn(ctx, email, resetToken, newPassword)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	if m.logoutFn == nil {
		panic("unexpected call: Logout")
	}
	return m.logoutFn(ctx, userID)
}

func (m *mockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, models.User, error) {
	if m.refreshTokensFn == nil {
		panic("unexpected call: RefreshTokens")
	}
	return m.refreshTokensFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseAccessTokenFn == nil {
		panic("unexpected call: ParseAccessToken")
	}
	return m.parseAccessTokenFn(ctx, tokenString)
}

// mockPropertyService implements service.PropertyService with per-method
// function fields.
type mockPropertyService struct {
	findAllFn  func(ctx context.Context, filter models.PropertyFilter) (models.PropertyPage, error)
	findByIDFn func(ctx context.Context, propertyID int64) (models.Property, error)
}

func (m *mockPropertyService) FindAll(ctx context.Context, filter models.PropertyFilter) (models.PropertyPage, error) {
	if m.findAllFn == nil {
		panic("unexpected call: FindAll")
	}
	return m.findAllFn(ctx, filter)
}

func (m *mockPropertyService) FindByID(ctx context.Context, propertyID int64) (models.Property, error) {
	if m.findByIDFn == nil {
		panic("unexpected call: FindByID")
	}
	return m.findByIDFn(ctx, propertyID)
}

// newTestRouter wires mock services through the full router, middleware
// included, so tests exercise the same request path as production.
func newTestRouter(auth *mockAuthService, property *mockPropertyService) *chi.Mux {
	handler := NewHandler(&service.Services{
		AuthService:     auth,
		PropertyService: property,
	}, logger.Nop())
	return handler.Init()
}
