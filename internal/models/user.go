package models

import (
	"gorm.io/gorm"
)

// User is an account identity. The password column holds a bcrypt hash.
type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null"`
	TermsAccepted    bool   `gorm:"not null"`
	MarketingConsent bool
	IsAdmin          bool
}
