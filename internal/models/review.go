package models

import (
	"gorm.io/gorm"
)

// Review is a public star rating with an optional comment.
type Review struct {
	gorm.Model
	Name    string `gorm:"not null"`
	Rating  int    `gorm:"not null"`
	Comment string
}
