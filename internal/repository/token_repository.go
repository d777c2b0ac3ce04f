package repository

import (
	"errors"
	"time"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/models"

	"gorm.io/gorm"
)

// TokenRepository stores the validity record behind each issued token.
// Logout deletes the row; a token whose row is gone is rejected even if
// the JWT itself has not expired yet.
type TokenRepository interface {
	Create(token *models.AccessToken) error
	GetByTokenID(tokenID string) (*models.AccessToken, error)
	DeleteByTokenID(tokenID string) error
	DeleteByUser(userID uint) error
	DeleteExpired(before time.Time) (int64, error)
}

// GormTokenRepository is the GORM implementation.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates the token repository.
func NewTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Create inserts a token record.
func (r *GormTokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// GetByTokenID fetches a token record by its opaque token ID.
func (r *GormTokenRepository) GetByTokenID(tokenID string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.db.Where("token_id = ?", tokenID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// DeleteByTokenID revokes a single token.
func (r *GormTokenRepository) DeleteByTokenID(tokenID string) error {
	return r.db.Where("token_id = ?", tokenID).Delete(&models.AccessToken{}).Error
}

// DeleteByUser revokes every token of a user.
func (r *GormTokenRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

// DeleteExpired removes token records whose expiry passed before the
// given instant, returning the number of rows purged.
func (r *GormTokenRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at IS NOT NULL AND expires_at < ?", before).Delete(&models.AccessToken{})
	return result.RowsAffected, result.Error
}
