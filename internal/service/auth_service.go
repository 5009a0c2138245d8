package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"verimail/internal/entity"
	"verimail/internal/repository"
	"verimail/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type AuthService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	audit  repository.AuditLogRepository

	mailer   Mailer
	hasher   PasswordHasher
	sessions SessionTokenIssuer
	clock    Clock
	logger   *logrus.Logger
	dispatch func(func())
	config   AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	audit repository.AuditLogRepository,
	mailer Mailer,
	hasher PasswordHasher,
	sessions SessionTokenIssuer,
	clock Clock,
	logger *logrus.Logger,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		audit:    audit,
		mailer:   mailer,
		hasher:   hasher,
		sessions: sessions,
		clock:    clock,
		logger:   logger,
		dispatch: func(fn func()) { go fn() },
		config:   config,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	otp, err := utils.GenerateOTP(s.otpLength())
	if err != nil {
		return nil, err
	}
	if err := s.issueToken(ctx, user.ID, entity.TokenKindVerify, otp); err != nil {
		return nil, err
	}

	subject, html := verificationEmail(otp)
	s.notify(user.Email, subject, html)
	_ = s.logAudit(ctx, &user.ID, nil, entity.Registered, nil)

	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		_ = s.logAudit(ctx, &user.ID, input.IPAddress, entity.LoginFailed, nil)
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.sessions.IssueSessionToken(*user)
	if err != nil {
		return nil, err
	}

	_ = s.logAudit(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return &SignInResult{User: user, Token: token, ExpiresIn: ttl}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, userID string, otp string) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(otp) == "" {
		return nil, ErrInvalidInput
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Verified {
		return nil, ErrAlreadyVerified
	}

	record, err := s.activeToken(ctx, user.ID, entity.TokenKindVerify, s.otpTTL())
	if err != nil {
		return nil, err
	}
	if record == nil || !s.hasher.Verify(record.SecretHash, otp) {
		return nil, ErrInvalidToken
	}

	if err := s.tokens.Delete(ctx, record.ID); err != nil {
		return nil, err
	}
	user.Verified = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	subject, html := welcomeEmail()
	s.notify(user.Email, subject, html)
	_ = s.logAudit(ctx, &user.ID, nil, entity.EmailVerified, nil)

	return user, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	existing, err := s.tokens.FindByOwner(ctx, user.ID, entity.TokenKindReset)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.Expired(s.resetTTL(), s.now()) {
			return ErrResetPending
		}
		if err := s.tokens.Delete(ctx, existing.ID); err != nil {
			return err
		}
	}

	raw, err := utils.GenerateResetToken(s.resetTokenSize())
	if err != nil {
		return err
	}
	if err := s.issueToken(ctx, user.ID, entity.TokenKindReset, raw); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrResetPending
		}
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&id=%s", s.linkBase(), raw, user.ID)
	subject, html := resetLinkEmail(link)
	s.notify(user.Email, subject, html)
	_ = s.logAudit(ctx, &user.ID, nil, entity.ResetRequested, nil)

	return nil
}

// ValidateResetToken resolves the user behind a reset link. It deliberately
// does not consume the token: the same record gates the subsequent
// ResetPassword call.
func (s *AuthService) ValidateResetToken(ctx context.Context, userID string, token string) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(token) == "" {
		return nil, ErrInvalidInput
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record, err := s.activeToken(ctx, user.ID, entity.TokenKindReset, s.resetTTL())
	if err != nil {
		return nil, err
	}
	if record == nil || !s.hasher.Verify(record.SecretHash, token) {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, user *entity.User, password string) error {
	password = strings.TrimSpace(password)

	if s.hasher.Verify(user.PasswordHash, password) {
		return ErrSamePassword
	}
	if len(password) < 8 || len(password) > 20 {
		return ErrPasswordLength
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	// The reset token is single-use: consume it so the link cannot authorize
	// a second change.
	record, err := s.tokens.FindByOwner(ctx, user.ID, entity.TokenKindReset)
	if err == nil && record != nil {
		_ = s.tokens.Delete(ctx, record.ID)
	}

	subject, html := resetDoneEmail()
	s.notify(user.Email, subject, html)
	_ = s.logAudit(ctx, &user.ID, nil, entity.PasswordReset, nil)

	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SweepExpiredTokens removes token records past their TTL for both kinds.
func (s *AuthService) SweepExpiredTokens(ctx context.Context) error {
	now := s.now()
	if err := s.tokens.DeleteExpired(ctx, entity.TokenKindVerify, now.Add(-s.otpTTL())); err != nil {
		return err
	}
	return s.tokens.DeleteExpired(ctx, entity.TokenKindReset, now.Add(-s.resetTTL()))
}

func (s *AuthService) issueToken(ctx context.Context, userID uuid.UUID, kind entity.TokenKind, raw string) error {
	hash, err := s.hasher.Hash(raw)
	if err != nil {
		return err
	}
	record := &entity.TokenRecord{
		UserID:     userID,
		Kind:       kind,
		SecretHash: hash,
		CreatedAt:  s.now(),
	}
	return s.tokens.Create(ctx, record)
}

// activeToken returns the owner's record for the kind, treating an expired
// record as absent and deleting it on the way out.
func (s *AuthService) activeToken(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.TokenKind,
	ttl time.Duration,
) (*entity.TokenRecord, error) {
	record, err := s.tokens.FindByOwner(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	if record.Expired(ttl, s.now()) {
		_ = s.tokens.Delete(ctx, record.ID)
		return nil, nil
	}
	return record, nil
}

// notify dispatches a send without awaiting completion; failures are logged
// and never reach the caller.
func (s *AuthService) notify(to string, subject string, html string) {
	if s.mailer == nil {
		return
	}
	mailer := s.mailer
	s.dispatch(func() {
		if err := mailer.Send(context.Background(), to, subject, html); err != nil {
			if s.logger != nil {
				s.logger.WithError(err).WithField("to", to).Warn("notification send failed")
			}
		}
	})
}

func (s *AuthService) logAudit(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) error {
	if s.audit == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	entry := &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.audit.Log(ctx, entry)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) otpLength() int {
	if s.config.OTPLength > 0 {
		return s.config.OTPLength
	}
	return 6
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 15 * time.Minute
}

func (s *AuthService) resetTokenSize() int {
	if s.config.ResetTokenSize > 0 {
		return s.config.ResetTokenSize
	}
	return 32
}

func (s *AuthService) resetTTL() time.Duration {
	if s.config.ResetTokenTTL > 0 {
		return s.config.ResetTokenTTL
	}
	return time.Hour
}

func (s *AuthService) linkBase() string {
	base := strings.TrimRight(s.config.ResetLinkBase, "/")
	if base == "" {
		base = "http://localhost:3000"
	}
	return base
}
