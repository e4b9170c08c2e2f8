package models

import (
	"gorm.io/gorm"
)

// ConsentDecision records a user's explicit cookie consent choice. A missing
// row means the user has not decided yet, which is distinct from an explicit
// reject-all decision.
type ConsentDecision struct {
	gorm.Model
	UserID      uint `gorm:"uniqueIndex;not null"`
	Analytics   bool
	Advertising bool
}
