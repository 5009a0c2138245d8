package entity

import (
	"time"

	"github.com/google/uuid"
)

type TokenKind string

const (
	TokenKindVerify TokenKind = "email_verify"
	TokenKindReset  TokenKind = "password_reset"
)

// TokenRecord holds a hashed short-lived secret bound to one user. The
// composite unique index guarantees at most one record per owner and kind,
// including under concurrent requests.
type TokenRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_token_owner_kind"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Kind       TokenKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_token_owner_kind"`
	SecretHash string    `gorm:"type:text;not null"`

	CreatedAt time.Time
}

func (t *TokenRecord) Expired(ttl time.Duration, now time.Time) bool {
	return now.After(t.CreatedAt.Add(ttl))
}
