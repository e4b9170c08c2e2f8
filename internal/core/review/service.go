package review

import (
	"strings"

	"gorm.io/gorm"

	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

// Service stores and lists user reviews.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateInput is one submitted review.
type CreateInput struct {
	Name    string
	Rating  int
	Comment string
}

// Create validates and stores a review.
func (s *Service) Create(in CreateInput) (*models.Review, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Anonymous"
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, common.NewValidationError("rating must be between 1 and 5")
	}

	review := models.Review{
		Name:    name,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns all reviews, newest first, with the running average rating.
func (s *Service) List() ([]models.Review, float64, error) {
	var reviews []models.Review
	if err := s.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	if len(reviews) == 0 {
		return reviews, 0, nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return reviews, float64(sum) / float64(len(reviews)), nil
}
