package models

import (
	"time"
)

// SavedMeal is a meal idea promoted into a user's meal book. Ingredients and
// steps are empty when the idea was saved from an unstructured generation; the
// original blob then lives in RawText.
type SavedMeal struct {
	ID          string   `gorm:"type:uuid;primaryKey"`
	UserID      uint     `gorm:"index;not null"`
	Title       string   `gorm:"not null"`
	Ingredients []string `gorm:"serializer:json"`
	Steps       []string `gorm:"serializer:json"`
	Tip         string
	RawText     string
	CreatedAt   time.Time
}
