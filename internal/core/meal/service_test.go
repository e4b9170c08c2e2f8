package meal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aiservice "babybites/internal/core/ai/service"
	"babybites/internal/infrastructure/config"
	"babybites/internal/pkg/common"
)

type stubCompleter struct {
	content string
	err     error
	calls   int
	lastArg string
}

func (s *stubCompleter) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	s.calls++
	s.lastArg = prompt
	return s.content, s.err
}

func newTestService(completer *stubCompleter) *Service {
	cfg := &config.Config{
		AI: config.AIConfig{
			ResponseFormat: FormatJSON,
			Separator:      "###",
			IdeaCount:      3,
		},
	}
	return NewService(cfg, aiservice.NewServiceWithCompleter(cfg, completer, nil))
}

func TestGenerateHappyPath(t *testing.T) {
	stub := &stubCompleter{content: `[
		{"title": "Banana Mash", "ingredients": ["banana"], "steps": ["mash"]},
		{"title": "Carrot Puree", "ingredients": ["carrot"], "steps": ["blend"]},
		{"title": "Oat Porridge", "ingredients": ["oats"], "steps": ["simmer"]}
	]`}
	svc := newTestService(stub)

	res, err := svc.Generate(context.Background(), Request{
		Age:         "9-11 months",
		Ingredients: "banana, carrot, oats",
	})

	require.NoError(t, err)
	assert.Len(t, res.Ideas, 3)
	assert.False(t, res.UnderCount)
	assert.Empty(t, res.AllergyNotice)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateAllergyNoticeSurvivesAnyOutput(t *testing.T) {
	// garbage payload still produces the caution sentence
	stub := &stubCompleter{content: "not json at all"}
	svc := newTestService(stub)

	res, err := svc.Generate(context.Background(), Request{
		Age:         "6-8 months",
		Ingredients: "rice",
		Allergies:   map[string]bool{"gluten": true, "nuts": true},
	})

	require.NoError(t, err)
	assert.Contains(t, res.AllergyNotice, "gluten, nuts")
	assert.True(t, res.Degraded)
}

func TestGenerateValidation(t *testing.T) {
	stub := &stubCompleter{}
	svc := newTestService(stub)

	tests := []struct {
		name string
		req  Request
	}{
		{"missing age", Request{Ingredients: "rice"}},
		{"unknown age bracket", Request{Age: "5 years", Ingredients: "rice"}},
		{"missing ingredients", Request{Age: "12+ months"}},
		{"blank ingredients", Request{Age: "12+ months", Ingredients: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, common.IsValidationError(err))
		})
	}

	// validation failures never reach the completion service
	assert.Equal(t, 0, stub.calls)
}

func TestGenerateUpstreamErrorPassesThrough(t *testing.T) {
	stub := &stubCompleter{err: common.ErrUpstreamFailure}
	svc := newTestService(stub)

	_, err := svc.Generate(context.Background(), Request{
		Age:         "12+ months",
		Ingredients: "rice",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUpstreamFailure) || err == common.ErrUpstreamFailure)
	// exactly one upstream call, no retry
	assert.Equal(t, 1, stub.calls)
}
