package repository

import (
	"context"

	"gorm.io/gorm"

	"studiorent/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) ListByStudioWithAuthor(ctx context.Context, studioID int64) ([]domain.ReviewWithAuthor, error) {
	var rows []domain.ReviewWithAuthor
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.username").
		Joins("JOIN users ON reviews.user_id = users.id").
		Where("reviews.studio_id = ?", studioID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
