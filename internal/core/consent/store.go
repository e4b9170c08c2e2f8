package consent

import (
	"errors"

	"gorm.io/gorm"

	"babybites/internal/models"
)

// Decision is a user's cookie-consent choice. A nil *Decision from Get means
// "not yet decided" and the client should re-arm the consent prompt; an
// explicit false/false row is a real rejection and must not re-prompt.
type Decision struct {
	Analytics   bool `json:"analytics"`
	Advertising bool `json:"advertising"`
}

// Store keeps one consent row per user.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the user's decision, or nil when none has been recorded.
func (s *Store) Get(userID uint) (*Decision, error) {
	var row models.ConsentDecision
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Decision{Analytics: row.Analytics, Advertising: row.Advertising}, nil
}

// Set records the user's decision, replacing any previous one.
func (s *Store) Set(userID uint, d Decision) error {
	var row models.ConsentDecision
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ConsentDecision{
			UserID:      userID,
			Analytics:   d.Analytics,
			Advertising: d.Advertising,
		}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&row).Updates(map[string]interface{}{
		"analytics":   d.Analytics,
		"advertising": d.Advertising,
	}).Error
}

// Reset clears the user's decision, re-arming the prompt. Resetting when no
// decision exists is a no-op. The delete is unscoped: a soft-deleted row
// would keep holding the user_id unique index and block the next Set.
func (s *Store) Reset(userID uint) error {
	return s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.ConsentDecision{}).Error
}
