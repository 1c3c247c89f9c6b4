// Package llm provides the pluggable advice-generator capability. The
// prediction pipeline depends only on the CoachLLM interface; the
// concrete provider is selected by configuration, so provider variants
// never fork the pipeline.
package llm

import (
	"context"
	"errors"
	"log"

	"github.com/sleepwise/coach-api/internal/domain"
)

var (
	// ErrCoachUnavailable indicates the provider is not configured.
	ErrCoachUnavailable = errors.New("coach provider unavailable")
	// ErrCoachRequest indicates an error during the provider call.
	ErrCoachRequest = errors.New("coach request failed")
)

// CoachLLM generates a lifestyle coach tip from a constructed prompt.
type CoachLLM interface {
	// GenerateTip sends the prompt and returns the parsed tip output.
	GenerateTip(ctx context.Context, prompt string) (*domain.CoachOutput, error)
}

// Options configure provider construction.
type Options struct {
	Provider     string
	OpenAIAPIKey string
	OpenAIModel  string
	SystemPrompt string
}

// NewCoachLLM builds the configured provider. Returns nil when the
// provider is unconfigured or unknown; callers must treat a nil client
// as "generator not configured" and fall back, never fail.
func NewCoachLLM(opts Options) CoachLLM {
	switch opts.Provider {
	case "", "openai":
		client := NewOpenAIClient(opts.OpenAIAPIKey, opts.OpenAIModel, opts.SystemPrompt)
		if client == nil {
			return nil
		}
		return client
	default:
		log.Printf("Warning: unknown COACH_PROVIDER %q, coach disabled", opts.Provider)
		return nil
	}
}
