package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studiorent/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the pair, silently keeping the existing row on conflict
// so the endpoint stays idempotent.
func (r *FavoriteRepository) Add(ctx context.Context, userID, studioID int64) error {
	f := domain.Favorite{UserID: userID, StudioID: studioID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&f).Error
}

// Remove deletes the pair; removing an absent pair is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, studioID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND studio_id = ?", userID, studioID).
		Delete(&domain.Favorite{}).Error
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, studioID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND studio_id = ?", userID, studioID).
		Count(&cnt).Error
	return cnt > 0, err
}

// ListStudiosByUser returns the favorited studios, most recently
// favorited first.
func (r *FavoriteRepository) ListStudiosByUser(ctx context.Context, userID int64) ([]domain.Studio, error) {
	var studios []domain.Studio
	err := r.db.WithContext(ctx).
		Table("studios").
		Select("studios.*").
		Joins("JOIN favorites ON studios.id = favorites.studio_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&studios).Error
	return studios, err
}
