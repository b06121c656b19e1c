package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiorent/internal/domain"
	"studiorent/internal/repository"
)

type Service struct {
	reviews *repository.ReviewRepository
	studios *repository.StudioRepository
}

func NewService(reviews *repository.ReviewRepository, studios *repository.StudioRepository) *Service {
	return &Service{reviews: reviews, studios: studios}
}

// Add appends a review. Reviews are a ledger: there is no update or
// delete path.
func (s *Service) Add(ctx context.Context, userID, studioID int64, req AddReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.studios.GetByID(ctx, studioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudioNotFound
		}
		return nil, err
	}

	rev := &domain.Review{
		UserID:   userID,
		StudioID: studioID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListByStudio(ctx context.Context, studioID int64) ([]domain.ReviewWithAuthor, error) {
	return s.reviews.ListByStudioWithAuthor(ctx, studioID)
}
