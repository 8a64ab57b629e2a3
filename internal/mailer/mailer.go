// Package mailer sends transactional email (verification codes and
// password-reset links) over SMTP.
//
// When the SMTP section of the configuration is left empty the mailer
// degrades to a logging no-op: the OTP or reset link is written to the log
// at warn level and the send reports success. This mirrors the development
// fallback of the original deployment and keeps signup usable without a
// mail server.
package mailer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmansurov/go-estate-api/internal/config"
	"github.com/dmansurov/go-estate-api/internal/logger"
	gomail "gopkg.in/gomail.v2"
)

const (
	otpSubject   = "Email Verification OTP"
	resetSubject = "Password Reset Request"
)

// Mailer delivers transactional email through a configured SMTP server.
type Mailer struct {
	cfg config.SMTP

	// publicURL is the externally visible application URL used to build
	// reset links.
	publicURL string

	logger *logger.Logger
}

// NewMailer constructs a Mailer from the SMTP configuration. An unconfigured
// SMTP section is allowed; sends then log instead of dialing out.
func NewMailer(cfg config.SMTP, publicURL string, logger *logger.Logger) *Mailer {
	if !cfg.Configured() {
		logger.Warn().Msg("SMTP is not configured; outgoing email will be logged instead of sent")
	}
	return &Mailer{
		cfg:       cfg,
		publicURL: publicURL,
		logger:    logger,
	}
}

// SendOTPEmail delivers the email-verification code to the given address.
func (m *Mailer) SendOTPEmail(ctx context.Context, to, otp string) error {
	log := logger.FromContext(ctx)

	if !m.cfg.Configured() {
		log.Warn().Str("to", to).Str("otp", otp).Msg("SMTP not configured, logging OTP instead of sending")
		return nil
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Email Verification</h2>
			<p>Thank you for signing up! Please use the following OTP to verify your email address:</p>
			<div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
				<h1 style="color: #007bff; font-size: 32px; letter-spacing: 5px; margin: 0;">%s</h1>
			</div>
			<p>This OTP will expire in 10 minutes.</p>
			<p>If you didn't request this verification, please ignore this email.</p>
		</div>`, otp)

	if err := m.send(to, otpSubject, body); err != nil {
		log.Err(err).Str("to", to).Msg("failed to send OTP email")
		return fmt.Errorf("error sending OTP email: %w", err)
	}

	log.Info().Str("to", to).Msg("OTP email sent successfully")
	return nil
}

// SendPasswordResetEmail delivers a reset link carrying the opaque reset
// token to the given address.
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, resetToken string) error {
	log := logger.FromContext(ctx)

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s&email=%s",
		m.publicURL, url.QueryEscape(resetToken), url.QueryEscape(to))

	if !m.cfg.Configured() {
		log.Warn().Str("to", to).Str("resetUrl", resetURL).Msg("SMTP not configured, logging reset link instead of sending")
		return nil
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Password Reset</h2>
			<p>You requested a password reset. Click the link below to set a new password:</p>
			<div style="text-align: center; margin: 20px 0;">
				<a href="%s" style="background-color: #007bff; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Reset Password</a>
			</div>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request a password reset, please ignore this email.</p>
		</div>`, resetURL)

	if err := m.send(to, resetSubject, body); err != nil {
		log.Err(err).Str("to", to).Msg("failed to send password reset email")
		return fmt.Errorf("error sending password reset email: %w", err)
	}

	log.Info().Str("to", to).Msg("password reset email sent successfully")
	return nil
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
