package core

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Short", "abc", 100, "abc"},
		{"Exact", strings.Repeat("x", 100), 100, strings.Repeat("x", 100)},
		{"Over", strings.Repeat("x", 150), 100, strings.Repeat("x", 100)},
		{"Empty", "", 100, ""},
		{"Multibyte", strings.Repeat("é", 150), 100, strings.Repeat("é", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%d runes, %d) = %d runes", len([]rune(tt.in)), tt.max, len([]rune(got)))
			}
		})
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{49, 50}, {50, 50}, {72, 72}, {95, 95}, {96, 95}, {-5, 50}, {1000, 95},
	}
	for _, tt := range tests {
		if got := ClampConfidence(tt.in); got != tt.want {
			t.Errorf("ClampConfidence(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStreamRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     StreamRequest
		wantErr bool
	}{
		{
			"AgentRound1",
			NewAgentRequest(AgentAnalyst, ThemeDefault, 1, "React", "Svelte", "Tech", nil, ""),
			false,
		},
		{
			"AgentRound2",
			NewAgentRequest(AgentWildcard, ThemeCourtroom, 2, "React", "Svelte", "Tech", RoundResults{AgentAnalyst: "take"}, ""),
			false,
		},
		{
			"Verdict",
			NewVerdictRequest("React", "Svelte", RoundResults{}, RoundResults{}, ""),
			false,
		},
		{
			"MissingOption",
			StreamRequest{Type: StreamAgent, AgentKey: AgentAnalyst, RoundNum: 1, OptionA: "React"},
			true,
		},
		{
			"UnknownAgent",
			StreamRequest{Type: StreamAgent, AgentKey: "moderator", RoundNum: 1, OptionA: "a", OptionB: "b"},
			true,
		},
		{
			"BadRound",
			StreamRequest{Type: StreamAgent, AgentKey: AgentAnalyst, RoundNum: 3, OptionA: "a", OptionB: "b"},
			true,
		},
		{
			"UnknownType",
			StreamRequest{Type: "summary", OptionA: "a", OptionB: "b"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageID(t *testing.T) {
	if got := MessageID(1, AgentAnalyst); got != "r1-analyst" {
		t.Errorf("MessageID = %q", got)
	}
	if got := MessageID(2, AgentWildcard); got != "r2-wildcard" {
		t.Errorf("MessageID = %q", got)
	}
}

func TestValidTheme(t *testing.T) {
	for _, k := range ThemeOrder {
		if !ValidTheme(k) {
			t.Errorf("ValidTheme(%q) = false", k)
		}
	}
	if ValidTheme("cooking_show") {
		t.Error("ValidTheme accepted unknown theme")
	}
}
