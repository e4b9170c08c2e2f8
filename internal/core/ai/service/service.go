package service

import (
	"context"
	"strings"

	"babybites/internal/core/ai/cache"
	"babybites/internal/core/ai/openai"
	"babybites/internal/infrastructure/config"
)

// Response is a completion result.
type Response struct {
	Content  string
	CacheHit bool
}

// Completer is the outbound completion dependency, satisfied by the OpenAI
// client in production and by stubs in tests.
type Completer interface {
	Generate(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

// Service fronts the completion client with the response cache.
type Service struct {
	config       *config.Config
	completer    Completer
	cacheManager *cache.Manager
}

// NewService creates the AI service with the default OpenAI client.
func NewService(cfg *config.Config, cacheManager *cache.Manager) (*Service, error) {
	return &Service{
		config:       cfg,
		completer:    openai.NewClient(cfg),
		cacheManager: cacheManager,
	}, nil
}

// NewServiceWithCompleter creates the AI service around a custom completer.
func NewServiceWithCompleter(cfg *config.Config, completer Completer, cacheManager *cache.Manager) *Service {
	return &Service{
		config:       cfg,
		completer:    completer,
		cacheManager: cacheManager,
	}
}

// ProcessRequest returns the completion for prompt, served from cache when a
// previous identical prompt is still fresh.
func (s *Service) ProcessRequest(ctx context.Context, prompt string, jsonMode bool) (*Response, error) {
	// The cache key collapses whitespace so formatting-only differences in
	// the prompt template hit the same entry. The outbound prompt itself is
	// never altered.
	cacheKey := strings.Join(strings.Fields(prompt), " ")

	if s.config.AI.EnableCache && s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, cacheKey); err == nil && val != "" {
			return &Response{Content: val, CacheHit: true}, nil
		}
	}

	content, err := s.completer.Generate(ctx, prompt, jsonMode)
	if err != nil {
		return nil, err
	}

	if s.config.AI.EnableCache && s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, cacheKey, content)
	}

	return &Response{Content: content}, nil
}
