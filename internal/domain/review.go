package domain

import "time"

// Review is append-only: no update or delete path exists.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	StudioID  int64     `json:"studio_id" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

// ReviewWithAuthor is a review row joined with the author's username
// for display.
type ReviewWithAuthor struct {
	Review
	Username string `json:"username"`
}
