package service

import (
	"context"
	"time"

	"verimail/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	OTPLength      int
	OTPTTL         time.Duration
	ResetTokenSize int
	ResetTokenTTL  time.Duration
	ResetLinkBase  string
}

// Mailer is the notification sink: best-effort, no delivery guarantee
// observed by the caller.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, html string) error
}

// PasswordHasher covers both password and token secrets: one-way salted
// hashing, constant-shape comparison that never errors on mismatch.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(hash string, candidate string) bool
}

type SessionTokenIssuer interface {
	IssueSessionToken(user entity.User) (string, time.Duration, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptHasher) Verify(hash string, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
