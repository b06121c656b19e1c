package repository

import (
	"context"

	"gorm.io/gorm"

	"studiorent/internal/domain"
)

// StudioFilters are AND-combined; zero values are no-ops. The "all"
// sentinel the front end sends is normalized away before this point.
type StudioFilters struct {
	Category string  // substring match against services
	City     string  // exact
	Status   string  // exact
	PriceMax float64 // inclusive upper bound on price_per_hour
	Search   string  // substring match against name or city
}

type StudioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

func (r *StudioRepository) List(ctx context.Context, f StudioFilters) ([]domain.Studio, error) {
	q := r.db.WithContext(ctx).Model(&domain.Studio{})

	if f.Category != "" {
		q = q.Where("services LIKE ?", "%"+f.Category+"%")
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PriceMax > 0 {
		q = q.Where("price_per_hour <= ?", f.PriceMax)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR city LIKE ?", pattern, pattern)
	}

	var studios []domain.Studio
	err := q.Order("created_at DESC").Find(&studios).Error
	return studios, err
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var s domain.Studio
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *StudioRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Studio, error) {
	var studios []domain.Studio
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&studios).Error
	return studios, err
}

func (r *StudioRepository) Create(ctx context.Context, s *domain.Studio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// UpdateFields applies a partial update; only the given columns change.
func (r *StudioRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Studio{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteCascade removes the studio and its bookings, reviews and
// favorites in one transaction.
func (r *StudioRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("studio_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("studio_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Studio{}, id).Error
	})
}

// ExpireOwnerReservations resets studios whose owner-level reservation
// ended before today. Returns the number of rows touched.
func (r *StudioRepository) ExpireOwnerReservations(ctx context.Context, today string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Studio{}).
		Where("status = ? AND reserved_until IS NOT NULL AND reserved_until < ?", domain.StudioReserved, today).
		Updates(map[string]any{"status": domain.StudioAvailable, "reserved_until": nil})
	return tx.RowsAffected, tx.Error
}
