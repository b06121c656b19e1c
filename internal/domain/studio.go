package domain

import "time"

type StudioStatus string

const (
	StudioAvailable StudioStatus = "available"
	StudioReserved  StudioStatus = "reserved"
)

// Studio is a rentable space. Services and Equipments are comma-joined
// ordered tag lists, stored and served exactly as the front end sends
// them so they split back into the same list.
type Studio struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"not null"`
	City         string       `json:"city" gorm:"not null;index"`
	PricePerHour float64      `json:"price_per_hour" gorm:"not null"`
	Status       StudioStatus `json:"status" gorm:"default:available"`
	// ReservedUntil is the owner-level block boundary (YYYY-MM-DD),
	// nil when the owner has not reserved the studio.
	ReservedUntil *string   `json:"reserved_until" gorm:"type:text"`
	Services      string    `json:"services"`
	Equipments    string    `json:"equipments"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	CreatedBy     int64     `json:"created_by" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Studio) TableName() string { return "studios" }

// OwnerBlockedFor reports whether an owner-level reservation blocks a
// booking starting on the given day. Boundary day counts as blocked.
func (s *Studio) OwnerBlockedFor(start string) bool {
	return s.Status == StudioReserved && s.ReservedUntil != nil && start <= *s.ReservedUntil
}
