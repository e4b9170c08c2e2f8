package mealbook

import (
	"strings"

	"gorm.io/gorm"

	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

// Service is the saved-meal collection. Every call is scoped to one owner;
// cross-user access falls out as a not-found, not a permission error body.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SaveInput is one meal idea as the client submits it for keeping.
type SaveInput struct {
	Title       string
	Ingredients []string
	Steps       []string
	Tip         string
	RawText     string
}

// Save writes a new saved meal for userID and returns the stored record.
func (s *Service) Save(userID uint, in SaveInput) (*models.SavedMeal, error) {
	if strings.TrimSpace(in.Title) == "" && strings.TrimSpace(in.RawText) == "" {
		return nil, common.NewValidationError("title is required")
	}

	meal := models.SavedMeal{
		ID:          common.GenerateUUID(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		Tip:         in.Tip,
		RawText:     in.RawText,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// List returns userID's saved meals, newest first.
func (s *Service) List(userID uint) ([]models.SavedMeal, error) {
	var meals []models.SavedMeal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// Remove deletes one saved meal conditioned on ownership. A wrong id or
// someone else's meal both come back as MEAL_NOT_FOUND.
func (s *Service) Remove(userID uint, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedMeal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrMealNotFound
	}
	return nil
}
