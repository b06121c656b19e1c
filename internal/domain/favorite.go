package domain

import "time"

// Favorite links a user to a studio. The (user, studio) pair is unique;
// inserting a duplicate is treated as success by the API.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_studio"`
	StudioID  int64     `json:"studio_id" gorm:"not null;uniqueIndex:idx_user_studio"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
