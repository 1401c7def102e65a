package repository

import (
	"context"
	"errors"

	"githubsearch/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository provides DB access for refresh-secret rows.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// FindActive returns a non-revoked row for the user. No ordering is applied:
// under correct operation at most one exists, and callers must not rely on
// which row comes back otherwise.
func (r *TokenRepository) FindActive(ctx context.Context, userID int64) (*domain.Token, error) {
	var t domain.Token
	tx := r.db.WithContext(ctx).Where("user_id = ? AND revoked = ?", userID, false).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

// Create inserts a new non-revoked row. It does not check for an existing
// active row; callers that must avoid duplicates use FindOrCreate.
func (r *TokenRepository) Create(ctx context.Context, t *domain.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindOrCreate returns the user's active row, inserting one with the given
// secret when none exists. The parent user row is locked for the duration of
// the transaction, so two concurrent first logins cannot both decide "none
// exists" and insert twice.
func (r *TokenRepository) FindOrCreate(ctx context.Context, userID int64, secret string) (*domain.Token, error) {
	var row domain.Token
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&owner, userID).Error; err != nil {
			return err
		}

		err := tx.Where("user_id = ? AND revoked = ?", userID, false).First(&row).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = domain.Token{
			UserID: userID,
			Secret: secret,
			Type:   domain.TokenTypeRefresh,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Revoke permanently retires a row. Idempotent: revoking an already revoked
// row is a no-op.
func (r *TokenRepository) Revoke(ctx context.Context, t *domain.Token) error {
	err := r.db.WithContext(ctx).Model(&domain.Token{}).
		Where("id = ?", t.ID).
		Update("revoked", true).Error
	if err != nil {
		return err
	}
	t.Revoked = true
	return nil
}
