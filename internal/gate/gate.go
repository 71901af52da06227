// Package gate screens comparison inputs before any debate begins. It runs a
// moderation check first and, when that passes, asks the model whether the
// two options form a comparable pair.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// ChatAPI is the slice of the LLM client the gate needs.
type ChatAPI interface {
	Complete(ctx context.Context, req llm.ChatRequest) (string, error)
	Moderate(ctx context.Context, input string) (llm.Moderation, error)
}

// Result is the outcome of a gate check.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Gate validates comparison inputs against an LLM.
type Gate struct {
	api    ChatAPI
	model  string
	logger *slog.Logger
}

// New creates a Gate using the given model for validation calls.
func New(api ChatAPI, model string, logger *slog.Logger) *Gate {
	if model == "" {
		model = prompt.DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{api: api, model: model, logger: logger}
}

// Check moderates the combined input and then asks the model whether the two
// options are comparable. A moderation API failure is treated as a pass so an
// outage never blocks users; a validation API failure is an error.
func (g *Gate) Check(ctx context.Context, optionA, optionB string) (Result, error) {
	// Only the user's own text goes to the moderation endpoint.
	input := fmt.Sprintf("%s %s", optionA, optionB)

	mod, err := g.api.Moderate(ctx, input)
	if err != nil {
		g.logger.Warn("moderation check failed, allowing input", "error", err)
	} else if mod.Flagged {
		return Result{Valid: false, Reason: flaggedReason(mod.Categories)}, nil
	}

	text, err := g.api.Complete(ctx, llm.ChatRequest{
		Model:       g.model,
		System:      prompt.ValidationSystemPrompt,
		User:        fmt.Sprintf("Option A: %s\nOption B: %s", optionA, optionB),
		MaxTokens:   prompt.ValidationMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return Result{}, fmt.Errorf("validation call failed: %w", err)
	}

	return parseValidation(text), nil
}

// flaggedReason renders moderation categories into a user-facing message.
// Category names use spaces instead of the API's slashes and underscores.
func flaggedReason(categories []string) string {
	readable := make([]string, len(categories))
	for i, c := range categories {
		c = strings.ReplaceAll(c, "/", " ")
		c = strings.ReplaceAll(c, "_", " ")
		readable[i] = c
	}
	return fmt.Sprintf("Content flagged for: %s. Please keep it clean.", strings.Join(readable, ", "))
}

// parseValidation interprets the model's verdict. Any reply that does not
// start with VALID is a rejection; the reason is whatever follows the first
// colon, or the whole reply when there is none.
func parseValidation(text string) Result {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(strings.ToUpper(trimmed), "VALID") {
		return Result{Valid: true}
	}

	reason := trimmed
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		reason = strings.TrimSpace(trimmed[idx+1:])
	}
	if reason == "" {
		reason = "These options cannot be compared."
	}
	return Result{Valid: false, Reason: reason}
}
