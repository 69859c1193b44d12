// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tobrien/trip-engine/pkg/types"
)

const defaultModel = "claude-sonnet-4-5-20250929"

// ClaudeBackend implements AIBackend against the Anthropic API.
type ClaudeBackend struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeBackend builds a backend from the AI configuration. The API key
// must already be resolved (config, secrets dir, or environment).
func NewClaudeBackend(cfg types.AIConfig) (*ClaudeBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required for AI extraction")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &ClaudeBackend{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  anthropic.Model(model),
	}, nil
}

// Extract sends one travel request to the model and parses the strict-JSON
// reply into an AIResponse.
func (b *ClaudeBackend) Extract(ctx context.Context, message string) (AIResponse, error) {
	prompt := buildPrompt(message)

	reply, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     b.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return AIResponse{}, fmt.Errorf("anthropic request: %w", err)
	}

	if len(reply.Content) == 0 {
		return AIResponse{}, fmt.Errorf("unexpected response format: no content blocks")
	}
	content := reply.Content[0]
	if content.Type != "text" {
		return AIResponse{}, fmt.Errorf("unexpected response format: not a text block (type=%s)", content.Type)
	}

	return parseModelReply(content.Text)
}

// parseModelReply extracts the JSON object from the model's text reply.
// Models occasionally wrap the object in prose, so the parse runs from the
// first '{' to the last '}'.
func parseModelReply(text string) (AIResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return AIResponse{}, fmt.Errorf("no JSON object in model reply")
	}

	var resp AIResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &resp); err != nil {
		return AIResponse{}, fmt.Errorf("parsing model reply: %w", err)
	}
	return resp, nil
}

func buildPrompt(message string) string {
	return fmt.Sprintf(`You are a travel assistant extracting trip planning information from user messages.

User message: %q

Extract any travel-related entities. Only extract information that is explicitly stated; never provide defaults or assumptions. Use null or omit fields that are not mentioned.

Rules:
- origin and destination are city names ("New York", "Las Vegas").
- travelers: "X adults" sets adults, "X children"/"X kids" sets children, a bare "X people" counts as adults.
- start_date must be YYYY-MM-DD.
- duration_days is the trip length in days (1-30).
- budget_tier is exactly one of "budget", "moderate", "luxury".
- budget_amount is a plain number for explicit figures like "$1000".
- trip_type is one of family, romantic, business, solo, adventure, cultural.
- interests are lowercase labels like "theme_parks", "food", "culture", "nature".

Return ONLY a valid JSON object with this structure:
{
    "origin": "...",
    "destination": "...",
    "start_date": "YYYY-MM-DD",
    "duration_days": 0,
    "adults": 0,
    "children": 0,
    "budget_amount": 0,
    "budget_tier": "...",
    "trip_type": "...",
    "interests": ["..."]
}`, message)
}
