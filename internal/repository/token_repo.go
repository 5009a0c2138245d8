package repository

import (
	"context"
	"errors"
	"time"

	"verimail/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenRepository is the shared contract for both token kinds. Records are
// write-once: a successful comparison is always followed by Delete.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.TokenRecord) error
	FindByOwner(ctx context.Context, userID uuid.UUID, kind entity.TokenKind) (*entity.TokenRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, kind entity.TokenKind, cutoff time.Time) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, t *entity.TokenRecord) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *tokenRepository) FindByOwner(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.TokenKind,
) (*entity.TokenRecord, error) {

	var token entity.TokenRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.TokenRecord{}).
		Error
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, kind entity.TokenKind, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND created_at < ?", kind, cutoff).
		Delete(&entity.TokenRecord{}).
		Error
}
