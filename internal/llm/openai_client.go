package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sleepwise/coach-api/internal/domain"
)

// DefaultSystemPrompt is the coach persona used when no prompt is loaded
// from the prompt store.
const DefaultSystemPrompt = `You are a creative lifestyle sleep coach.

You receive a de-identified summary of one person's day: age bracket, sleep duration, predicted sleep quality, stress level, daily steps, body-mass category, disorder risk, and the top signals that drove the risk classification.

Rules:
- Give one practical, behavioral tip targeting the top drivers.
- Do NOT diagnose or mention treatment.
- Be concrete: times, durations, counts.

You must respond as strict JSON with exactly this shape:

{
  "tip": "one actionable suggestion in 1-2 sentences",
  "rationale": "one sentence linking the tip to the provided signals",
  "confidence": "low | medium | high"
}

No extra fields. No comments. No backticks.`

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates an OpenAI coach provider. Returns nil if
// apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &OpenAIClient{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateTip calls OpenAI and parses the strict-JSON reply.
func (c *OpenAIClient) GenerateTip(ctx context.Context, prompt string) (*domain.CoachOutput, error) {
	if c == nil {
		return nil, ErrCoachUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoachRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrCoachRequest)
	}

	return parseCoachReply(resp.Choices[0].Message.Content), nil
}

// parseCoachReply turns the model's reply into a CoachOutput. Markdown
// code fences are stripped first; a reply that still isn't the expected
// JSON is kept verbatim as the tip with medium confidence rather than
// rejected.
func parseCoachReply(content string) *domain.CoachOutput {
	text := strings.TrimSpace(content)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var out domain.CoachOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil || out.Tip == "" {
		return &domain.CoachOutput{Tip: text, Confidence: domain.ConfidenceMedium}
	}
	if out.Confidence == "" {
		out.Confidence = domain.ConfidenceMedium
	}
	return &out
}
