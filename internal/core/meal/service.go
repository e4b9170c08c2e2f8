package meal

import (
	"context"
	"strings"

	aiservice "babybites/internal/core/ai/service"
	"babybites/internal/infrastructure/config"
	"babybites/internal/pkg/common"
)

// Service runs the generation pipeline: encode allergies, build the prompt,
// invoke the completion service, normalize the payload.
type Service struct {
	config *config.Config
	ai     *aiservice.Service
}

func NewService(cfg *config.Config, ai *aiservice.Service) *Service {
	return &Service{config: cfg, ai: ai}
}

// Generate produces meal ideas for one request. Validation failures return a
// VALIDATION_ERROR; upstream failures pass through typed from the invoker.
// The allergy notice is attached no matter what the upstream returned.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	format := s.config.AI.ResponseFormat
	prompt := BuildPrompt(req, s.config.AI.IdeaCount, format, s.config.AI.Separator)

	resp, err := s.ai.ProcessRequest(ctx, prompt, format == FormatJSON)
	if err != nil {
		return nil, err
	}

	res := Normalize(resp.Content, format, s.config.AI.Separator, s.config.AI.IdeaCount)
	res.AllergyNotice = AllergyNotice(req.Allergies)
	return &res, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Age) == "" {
		return common.NewValidationError("age is required")
	}
	if !ValidAge(req.Age) {
		return common.NewValidationError("age must be one of: " + strings.Join(AgeBrackets, ", "))
	}
	if strings.TrimSpace(req.Ingredients) == "" {
		return common.NewValidationError("ingredients are required")
	}
	return nil
}
