package auth

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"

	"go.uber.org/zap"
)

var (
	ErrMissingFields      = errors.New("username, email and password required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOTPDelivery        = errors.New("failed to send otp email")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const otpSubject = "Email Verification - Debt Collection System"

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; font-family: Arial, sans-serif;">
  <div style="background: white; border-radius: 15px; padding: 30px; max-width: 500px; margin: 0 auto;">
    <h2 style="color: #667eea; text-align: center;">Debt Collection System</h2>
    <h3 style="color: #333; text-align: center;">Email Verification</h3>
    <p style="color: #666; text-align: center;">Your OTP verification code is:</p>
    <div style="background: #667eea; color: white; font-size: 32px; font-weight: bold; text-align: center; padding: 20px; border-radius: 10px; letter-spacing: 5px;">{{.OTP}}</div>
    <p style="color: #999; text-align: center; font-size: 14px;">This code will expire in {{.Minutes}} minutes.</p>
  </div>
</div>
`))

// Service регистрация с подтверждением по почте и вход
type Service struct {
	admins     domain.AdminRepo
	sender     domain.Sender
	signer     *Signer
	pending    *Registrations
	logger     *zap.Logger
	otpMinutes int
}

func NewService(admins domain.AdminRepo, sender domain.Sender, signer *Signer, pending *Registrations, logger *zap.Logger) *Service {
	return &Service{
		admins:     admins,
		sender:     sender,
		signer:     signer,
		pending:    pending,
		logger:     logger,
		otpMinutes: int(pending.ttl.Minutes()),
	}
}

// Register проверяет данные и отправляет код подтверждения на почту.
// Администратор создается только в VerifyOTP.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return ErrEmailExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	otp, err := GenerateOTP()
	if err != nil {
		return fmt.Errorf("error generating otp: %w", err)
	}

	var body strings.Builder
	if err := otpTemplate.Execute(&body, map[string]any{"OTP": otp, "Minutes": s.otpMinutes}); err != nil {
		return fmt.Errorf("error rendering otp email: %w", err)
	}
	if err := s.sender.Send(ctx, email, otpSubject, body.String()); err != nil {
		s.logger.Warn("failed to send otp email", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrOTPDelivery, err)
	}

	s.pending.Put(Pending{Username: username, Email: email, PasswordHash: hash, OTP: otp})
	s.logger.Info("otp sent", zap.String("email", email))
	return nil
}

// VerifyOTP подтверждает код и создает администратора
func (s *Service) VerifyOTP(ctx context.Context, email, otp string) (*model.Admin, error) {
	p, err := s.pending.Take(email, otp)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{Username: p.Username, Email: p.Email, PasswordHash: p.PasswordHash}
	if err := s.admins.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	s.logger.Info("admin registered", zap.Uint("admin_id", admin.ID), zap.String("email", admin.Email))
	return admin, nil
}

// Login сверяет пароль и выдает токен
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error loading admin: %w", err)
	}
	if err := CheckPassword(admin.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.signer.Sign(admin.ID, admin.Username)
	if err != nil {
		return "", nil, fmt.Errorf("error signing token: %w", err)
	}
	return token, admin, nil
}
