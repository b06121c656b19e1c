package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studiorent/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// DB exposes the underlying handle for transaction scoping.
func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// CountOverlapping counts non-cancelled bookings of the studio whose
// inclusive [date, end_date] range intersects [start, end].
func (r *BookingRepository) CountOverlapping(ctx context.Context, studioID int64, start, end string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("item_id = ? AND status != ?", studioID, domain.BookingCancelled).
		Where("NOT (end_date < ? OR date > ?)", start, end).
		Count(&cnt).Error
	return cnt, err
}

// ExistsCovering reports whether a non-cancelled booking of the studio
// covers the given day.
func (r *BookingRepository) ExistsCovering(ctx context.Context, studioID int64, day string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("item_id = ? AND status != ?", studioID, domain.BookingCancelled).
		Where("? BETWEEN date AND end_date", day).
		Count(&cnt).Error
	return cnt > 0, err
}

// UserBookingDetails is a booking joined with listing fields for the
// my-bookings page.
type UserBookingDetails struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ItemID       int64     `json:"item_id"`
	Date         string    `json:"date"`
	EndDate      string    `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	StudioName   string    `json:"studio_name"`
	PricePerHour float64   `json:"price_per_hour"`
	City         string    `json:"city"`
	Equipments   string    `json:"equipments"`
}

func (r *BookingRepository) ListByUserWithStudio(ctx context.Context, userID int64) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, studios.name AS studio_name, studios.price_per_hour, studios.city, studios.equipments").
		Joins("JOIN studios ON bookings.item_id = studios.id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.date DESC").
		Scan(&rows).Error
	return rows, err
}

// BookedDate is a single start date, served to the availability widget.
type BookedDate struct {
	Date string `json:"date"`
}

func (r *BookingRepository) ListDatesByStudio(ctx context.Context, studioID int64) ([]BookedDate, error) {
	var rows []BookedDate
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("date").
		Where("item_id = ? AND status != ?", studioID, domain.BookingCancelled).
		Scan(&rows).Error
	return rows, err
}
