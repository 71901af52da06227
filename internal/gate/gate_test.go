package gate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alienxp03/splitdecision/internal/llm"
)

type fakeAPI struct {
	moderation    llm.Moderation
	moderationErr error
	moderateInput string
	completion    string
	completionErr error
	completeCalls int
}

func (f *fakeAPI) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.completeCalls++
	return f.completion, f.completionErr
}

func (f *fakeAPI) Moderate(ctx context.Context, input string) (llm.Moderation, error) {
	f.moderateInput = input
	return f.moderation, f.moderationErr
}

func TestCheckModeratesUserTextOnly(t *testing.T) {
	api := &fakeAPI{completion: "VALID"}
	g := New(api, "", nil)

	if _, err := g.Check(context.Background(), "pizza", "tacos"); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if api.moderateInput != "pizza tacos" {
		t.Errorf("expected moderation input %q, got %q", "pizza tacos", api.moderateInput)
	}
}

func TestCheckFlaggedInput(t *testing.T) {
	api := &fakeAPI{
		moderation: llm.Moderation{Flagged: true, Categories: []string{"harassment/threatening", "self_harm"}},
	}
	g := New(api, "", nil)

	got, err := g.Check(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if got.Valid {
		t.Error("expected flagged input to be invalid")
	}
	want := "Content flagged for: harassment threatening, self harm. Please keep it clean."
	if got.Reason != want {
		t.Errorf("expected reason %q, got %q", want, got.Reason)
	}
	if api.completeCalls != 0 {
		t.Error("expected no validation call after moderation flag")
	}
}

func TestCheckModerationFailureAllows(t *testing.T) {
	api := &fakeAPI{
		moderationErr: errors.New("moderation endpoint down"),
		completion:    "VALID",
	}
	g := New(api, "", nil)

	got, err := g.Check(context.Background(), "pizza", "tacos")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !got.Valid {
		t.Errorf("expected moderation outage to fall through to validation, got %+v", got)
	}
	if api.completeCalls != 1 {
		t.Errorf("expected one validation call, got %d", api.completeCalls)
	}
}

func TestCheckValidationOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		valid      bool
		reason     string
	}{
		{"valid uppercase", "VALID", true, ""},
		{"valid lowercase", "valid - these are comparable", true, ""},
		{"invalid with reason", "INVALID: Option B is gibberish.", false, "Option B is gibberish."},
		{"invalid no colon", "INVALID", false, "INVALID"},
		{"freeform rejection", "These are not comparable things", false, "These are not comparable things"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{completion: tt.completion}
			g := New(api, "gpt-4o-mini", nil)

			got, err := g.Check(context.Background(), "a", "b")
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if got.Valid != tt.valid {
				t.Errorf("expected valid=%v, got %v", tt.valid, got.Valid)
			}
			if got.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, got.Reason)
			}
		})
	}
}

func TestCheckValidationError(t *testing.T) {
	api := &fakeAPI{completionErr: errors.New("boom")}
	g := New(api, "", nil)

	_, err := g.Check(context.Background(), "a", "b")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "validation call failed") {
		t.Errorf("unexpected error: %v", err)
	}
}
