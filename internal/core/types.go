// Package core contains the core domain types for splitdecision.
package core

import "fmt"

// AgentKey identifies one of the four fixed debate personas.
type AgentKey string

const (
	AgentAnalyst    AgentKey = "analyst"
	AgentContrarian AgentKey = "contrarian"
	AgentPragmatist AgentKey = "pragmatist"
	AgentWildcard   AgentKey = "wildcard"
)

// AgentOrder is the canonical order agents speak in within a round.
var AgentOrder = []AgentKey{AgentAnalyst, AgentContrarian, AgentPragmatist, AgentWildcard}

// ValidAgent reports whether k names a known agent.
func ValidAgent(k AgentKey) bool {
	for _, a := range AgentOrder {
		if a == k {
			return true
		}
	}
	return false
}

// ThemeKey identifies a persona pack that sets the tone of the whole panel.
type ThemeKey string

const (
	ThemeDefault           ThemeKey = "default"
	ThemeStartupBros       ThemeKey = "startup_bros"
	ThemeAcademicPanel     ThemeKey = "academic_panel"
	ThemeBarArgument       ThemeKey = "bar_argument"
	ThemeSharkTank         ThemeKey = "shark_tank"
	ThemeRedditThread      ThemeKey = "reddit_thread"
	ThemeCourtroom         ThemeKey = "courtroom"
	ThemeSportsCommentary  ThemeKey = "sports_commentary"
	ThemePhilosophySeminar ThemeKey = "philosophy_seminar"
)

// ThemeOrder lists all themes in display order.
var ThemeOrder = []ThemeKey{
	ThemeDefault,
	ThemeStartupBros,
	ThemeAcademicPanel,
	ThemeBarArgument,
	ThemeSharkTank,
	ThemeRedditThread,
	ThemeCourtroom,
	ThemeSportsCommentary,
	ThemePhilosophySeminar,
}

// ValidTheme reports whether k names a known theme. Unknown themes are
// rejected at the persistence boundary but fall back to the default theme
// during prompt resolution.
func ValidTheme(k ThemeKey) bool {
	for _, t := range ThemeOrder {
		if t == k {
			return true
		}
	}
	return false
}

// Phase represents the debate driver's state.
type Phase string

const (
	PhaseInput      Phase = "input"
	PhaseValidating Phase = "validating"
	PhaseDebating   Phase = "debating"
	PhaseDone       Phase = "done"
)

// AgentMessage is one agent's output for one round, built up fragment by
// fragment while the underlying stream is open.
type AgentMessage struct {
	ID          string   `json:"id"`
	AgentKey    AgentKey `json:"agentKey"`
	Round       int      `json:"round"`
	Text        string   `json:"text"`
	IsStreaming bool     `json:"isStreaming"`
}

// MessageID returns the canonical message identifier for a (round, agent)
// pair, e.g. "r1-analyst".
func MessageID(round int, agent AgentKey) string {
	return fmt.Sprintf("r%d-%s", round, agent)
}

// Verdict is the final synthesis: a winner and a confidence score parsed
// incrementally out of the verdict round's accumulating text.
type Verdict struct {
	Winner      string `json:"winner"`
	Confidence  *int   `json:"confidence"`
	FullText    string `json:"fullText"`
	IsStreaming bool   `json:"isStreaming"`
}

// RoundResults maps each agent to its full text for one round. Built during
// a round and treated as read-only once the next round starts.
type RoundResults map[AgentKey]string

// ComparisonRequest is one user submission: the two options plus settings.
// APIKey, when set, routes all model calls directly to the provider with the
// caller's own credential instead of through the server.
type ComparisonRequest struct {
	OptionA  string   `json:"optionA"`
	OptionB  string   `json:"optionB"`
	Category string   `json:"category"`
	Theme    ThemeKey `json:"theme"`
	Model    string   `json:"model"`
	APIKey   string   `json:"-"`
}

// ComparisonRecord is the persisted outcome of a completed comparison.
type ComparisonRecord struct {
	OptionA    string   `json:"optionA"`
	OptionB    string   `json:"optionB"`
	Category   string   `json:"category"`
	Theme      ThemeKey `json:"theme"`
	Winner     string   `json:"winner"`
	Confidence int      `json:"confidence"`
	Timestamp  int64    `json:"timestamp"`
}

// MaxFieldLen caps every string field of a persisted record.
const MaxFieldLen = 100

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ClampConfidence forces a confidence score into the closed range [50, 95].
func ClampConfidence(n int) int {
	if n < 50 {
		return 50
	}
	if n > 95 {
		return 95
	}
	return n
}
