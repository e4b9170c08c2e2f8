package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"babybites/internal/infrastructure/config"
	"babybites/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates a completion client with fixed invocation parameters.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenAI.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.OpenAI.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate sends the prompt once and returns the completion text. There is no
// internal retry: the upstream call is metered and not idempotent, so a
// transient failure is surfaced to the caller instead.
func (c *Client) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if c.config.OpenAI.APIKey == "" {
		return "", common.ErrMissingCredential
	}

	req := chatRequest{
		Model: c.config.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.OpenAI.Temperature,
		MaxTokens:   c.config.OpenAI.MaxTokens,
	}
	if jsonMode {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	common.LogInfo("sending completion request",
		zap.String("model", req.Model),
		zap.Bool("json_mode", jsonMode),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		common.LogError("completion request failed to send",
			zap.Error(err),
			zap.String("model", req.Model),
		)
		return "", common.NewError("UPSTREAM_FAILURE", "completion service request failed", http.StatusInternalServerError, err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("completion service returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", req.Model),
			zap.String("response", resp.String()),
		)
		status := http.StatusInternalServerError
		if resp.StatusCode() == http.StatusTooManyRequests {
			status = http.StatusServiceUnavailable
		}
		return "", common.NewError("UPSTREAM_FAILURE",
			fmt.Sprintf("completion service error (status %d)", resp.StatusCode()), status, nil)
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.NewError("UPSTREAM_FAILURE", "failed to parse completion response", http.StatusInternalServerError, err)
	}

	if len(result.Choices) == 0 {
		return "", common.ErrEmptyCompletion
	}
	content := result.Choices[0].Message.Content
	if content == "" {
		// Empty content is a failure, not zero ideas.
		return "", common.ErrEmptyCompletion
	}

	common.LogInfo("completion generated",
		zap.String("model", req.Model),
		zap.Int("content_length", len(content)),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return content, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
