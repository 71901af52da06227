// Package prompt resolves the instruction text for every model call: the
// per-theme agent system prompts, the user-facing message bodies, and the
// fixed validation and verdict instructions. Everything here is a pure
// function over its inputs.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alienxp03/splitdecision/internal/core"
)

// DefaultModel is used when a request carries no model identifier.
const DefaultModel = "gpt-4o-mini"

// Token budgets per call type.
const (
	MaxResponseTokens   = 400 // agent round 1
	MaxResponseTokensR2 = 250 // agent round 2
	VerdictMaxTokens    = 500
	ValidationMaxTokens = 60
)

// Sampling temperatures per call type.
const (
	AgentTemperature      = 0.9
	VerdictTemperature    = 0.7
	ValidationTemperature = 0.0
)

// RoundPrompts holds one agent's instruction blocks for both rounds.
type RoundPrompts struct {
	Round1 string
	Round2 string
}

// Theme is one persona pack: presentation info plus the full instruction
// table for all four agents across both rounds.
type Theme struct {
	Key         core.ThemeKey `json:"key"`
	Label       string        `json:"label"`
	Emoji       string        `json:"emoji"`
	Description string        `json:"description"`

	Agents map[core.AgentKey]RoundPrompts `json:"-"`
}

// ThemeByKey returns the theme for key, falling back to the default theme
// when the key is unrecognized. A missing (theme, agent, round) combination
// is a configuration error, not something surfaced at runtime.
func ThemeByKey(key core.ThemeKey) Theme {
	if t, ok := themes[key]; ok {
		return t
	}
	return themes[core.ThemeDefault]
}

// Themes returns all themes in display order.
func Themes() []Theme {
	out := make([]Theme, 0, len(core.ThemeOrder))
	for _, key := range core.ThemeOrder {
		out = append(out, themes[key])
	}
	return out
}

// naturalWritingRules is appended to every agent and verdict system prompt.
// It is a cross-cutting style constraint, not part of any theme.
const naturalWritingRules = "\n\nIMPORTANT writing style rules — you MUST follow these:" +
	"\n- Write like a real human. Sound natural, conversational, and unpolished." +
	"\n- NEVER use em dashes (— or --). Use commas, periods, or just start a new sentence." +
	"\n- NEVER use semicolons. Break into two sentences instead." +
	"\n- Avoid filler phrases: \"It's worth noting\", \"It's important to remember\", \"Interestingly\", \"At the end of the day\", \"In terms of\", \"When it comes to\"." +
	"\n- Don't hedge with \"arguably\", \"essentially\", \"fundamentally\", \"quite\", \"rather\", \"somewhat\"." +
	"\n- Don't start sentences with \"However,\" \"Moreover,\" \"Furthermore,\" \"Additionally,\" \"That said,\"." +
	"\n- Use contractions (don't, can't, won't, it's). Nobody talks without them." +
	"\n- Vary sentence length. Mix short punchy lines with longer ones." +
	"\n- No bullet points unless the theme specifically calls for them."

// ValidationSystemPrompt instructs the model to answer with exactly one
// line: VALID or INVALID with a reason.
const ValidationSystemPrompt = "You are a comparison validator. Your job is to decide whether two options can be meaningfully compared.\n\n" +
	"A comparison is VALID if the two options:\n" +
	"- Are in the same general category (two cars, two languages, two careers, etc.)\n" +
	"- OR serve a similar purpose / solve a similar problem\n" +
	"- OR are commonly debated against each other, even if different categories\n" +
	"- Creative or fun comparisons are fine (cats vs dogs, pizza vs tacos)\n\n" +
	"A comparison is INVALID if:\n" +
	"- The options are from completely unrelated domains with no meaningful overlap (e.g. 'Apache Helicopter vs BMW X6', 'banana vs SQL', 'Mount Everest vs JavaScript')\n" +
	"- One or both options are nonsensical or gibberish\n\n" +
	"Respond with EXACTLY one line:\n" +
	"VALID — if the comparison makes sense\n" +
	"INVALID: [short reason] — if it doesn't\n\n" +
	"Be lenient. When in doubt, allow it."

// VerdictSystemPrompt fixes the structure the verdict parser depends on.
const VerdictSystemPrompt = "You are the Verdict Agent, a wise synthesizer who reads expert opinions from both rounds of debate and delivers a clear, balanced final recommendation.\n\n" +
	"You MUST structure your response EXACTLY as follows:\n\n" +
	"WINNER: [Option A or Option B]\n" +
	"CONFIDENCE: [a number between 50 and 95]%\n\n" +
	"Then write a concise synthesis (3-4 sentences) explaining the recommendation.\n\n" +
	"Then write:\nWHAT WOULD FLIP THIS: [1-2 sentences on what would change the recommendation]\n\n" +
	"Then write:\nPICK [Option A] IF: [1 sentence describing who should pick this]\n" +
	"PICK [Option B] IF: [1 sentence describing who should pick this]\n\n" +
	"Be decisive but honest. Keep the total response under 200 words." +
	naturalWritingRules

// AgentSystemPrompt resolves the instruction block for one (agent, theme,
// round) combination and appends the shared writing rules. Any round other
// than 2 resolves to the round 1 block.
func AgentSystemPrompt(agent core.AgentKey, theme core.ThemeKey, round int) string {
	prompts := ThemeByKey(theme).Agents[agent]
	if round == 2 {
		return prompts.Round2 + naturalWritingRules
	}
	return prompts.Round1 + naturalWritingRules
}

func categoryContext(category string) string {
	if category == "" || category == "General" {
		return ""
	}
	return fmt.Sprintf(" (Category: %s)", category)
}

// BuildUserPrompt builds the round 1 message body.
func BuildUserPrompt(optionA, optionB, category string) string {
	return fmt.Sprintf(
		"The user wants to compare: **%s** vs **%s**%s\n\nAnalyze this matchup from your unique perspective. Address both options directly. Be specific, not generic.",
		optionA, optionB, categoryContext(category),
	)
}

// BuildRound2UserPrompt builds the rebuttal message body, embedding every
// agent's round 1 output. A missing entry renders as an explicit placeholder
// so the prompt stays well-formed.
func BuildRound2UserPrompt(optionA, optionB, category string, round1 core.RoundResults) string {
	var summary strings.Builder
	for i, key := range core.AgentOrder {
		if i > 0 {
			summary.WriteString("\n\n")
		}
		info := agents[key]
		fmt.Fprintf(&summary, "**%s %s:**\n%s", info.Emoji, info.Name, resultOrPlaceholder(round1, key))
	}

	return fmt.Sprintf(
		"The user is comparing: **%s** vs **%s**%s\n\nHere's what all panelists said in Round 1:\n\n%s\n\nNow write your Round 2 rebuttal. Respond to the other panelists directly.",
		optionA, optionB, categoryContext(category), summary.String(),
	)
}

// BuildVerdictPrompt builds the verdict message body from the full
// transcript of both rounds.
func BuildVerdictPrompt(optionA, optionB string, round1, round2 core.RoundResults) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Comparison: **%s** vs **%s**\n\n", optionA, optionB)

	b.WriteString("### Round 1 — Initial Takes\n\n")
	writeRoundSections(&b, round1)
	b.WriteString("\n\n### Round 2 — Rebuttals\n\n")
	writeRoundSections(&b, round2)
	b.WriteString("\n\nNow deliver your verdict.")

	return b.String()
}

func writeRoundSections(b *strings.Builder, results core.RoundResults) {
	for i, key := range core.AgentOrder {
		if i > 0 {
			b.WriteString("\n\n")
		}
		info := agents[key]
		fmt.Fprintf(b, "### %s %s\n%s", info.Emoji, info.Name, resultOrPlaceholder(results, key))
	}
}

func resultOrPlaceholder(results core.RoundResults, key core.AgentKey) string {
	if text, ok := results[key]; ok && text != "" {
		return text
	}
	return "(No response)"
}

// Params are the resolved parameters for one model call.
type Params struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
	Model       string
}

// Resolve turns a stream request into concrete call parameters.
func Resolve(req core.StreamRequest) Params {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	if req.Type == core.StreamVerdict {
		return Params{
			System:      VerdictSystemPrompt,
			User:        BuildVerdictPrompt(req.OptionA, req.OptionB, req.Round1Results, req.Round2Results),
			MaxTokens:   VerdictMaxTokens,
			Temperature: VerdictTemperature,
			Model:       model,
		}
	}

	user := BuildUserPrompt(req.OptionA, req.OptionB, req.Category)
	maxTokens := MaxResponseTokens
	if req.RoundNum == 2 {
		maxTokens = MaxResponseTokensR2
		if req.Round1Results != nil {
			user = BuildRound2UserPrompt(req.OptionA, req.OptionB, req.Category, req.Round1Results)
		}
	}

	return Params{
		System:      AgentSystemPrompt(req.AgentKey, req.Theme, req.RoundNum),
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: AgentTemperature,
		Model:       model,
	}
}
