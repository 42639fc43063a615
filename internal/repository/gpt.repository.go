package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"

	"verdant/internal/domain"
)

// GptRepository generates free-text investment narratives. Implementations
// must return ErrUpstreamUnavailable-wrapped errors so callers can degrade
// instead of blocking the ranking flow.
type GptRepository interface {
	GenerateNarrative(ctx context.Context, prompt string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	res, err := h.GptClient.SimpleSend(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: narrative model call failed: %v", domain.ErrUpstreamUnavailable, err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("%w: narrative model returned no choices", domain.ErrUpstreamUnavailable)
	}
	return res.Choices[0].Message.Content, nil
}
