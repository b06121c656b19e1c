package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled exists in the schema and is excluded from
	// overlap checks; no endpoint currently sets it.
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves a studio for an inclusive day range [Date, EndDate].
// Single-day bookings have EndDate equal to Date.
type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	UserID    int64         `json:"user_id" gorm:"not null;index"`
	ItemID    int64         `json:"item_id" gorm:"not null;index"`
	Date      string        `json:"date" gorm:"type:text;not null"`
	EndDate   string        `json:"end_date" gorm:"type:text;not null"`
	Status    BookingStatus `json:"status" gorm:"default:confirmed"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Booking) TableName() string { return "bookings" }
