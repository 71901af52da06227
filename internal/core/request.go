package core

import "fmt"

// StreamType discriminates the two kinds of streaming request.
type StreamType string

const (
	StreamAgent   StreamType = "agent"
	StreamVerdict StreamType = "verdict"
)

// StreamRequest is the discriminated request body for one streamed model
// call: either a single agent's turn in a round, or the verdict synthesis.
// Each variant has its own required-field set, checked by Validate.
type StreamRequest struct {
	Type          StreamType   `json:"type"`
	AgentKey      AgentKey     `json:"agentKey,omitempty"`
	Theme         ThemeKey     `json:"theme,omitempty"`
	RoundNum      int          `json:"roundNum,omitempty"`
	OptionA       string       `json:"optionA"`
	OptionB       string       `json:"optionB"`
	Category      string       `json:"category,omitempty"`
	Round1Results RoundResults `json:"round1Results,omitempty"`
	Round2Results RoundResults `json:"round2Results,omitempty"`
	Model         string       `json:"model,omitempty"`
}

// NewAgentRequest builds a StreamRequest for one (agent, round) call.
// round1 is required for round 2 prompts and ignored for round 1.
func NewAgentRequest(agent AgentKey, theme ThemeKey, round int, optionA, optionB, category string, round1 RoundResults, model string) StreamRequest {
	return StreamRequest{
		Type:          StreamAgent,
		AgentKey:      agent,
		Theme:         theme,
		RoundNum:      round,
		OptionA:       optionA,
		OptionB:       optionB,
		Category:      category,
		Round1Results: round1,
		Model:         model,
	}
}

// NewVerdictRequest builds a StreamRequest for the verdict call.
func NewVerdictRequest(optionA, optionB string, round1, round2 RoundResults, model string) StreamRequest {
	return StreamRequest{
		Type:          StreamVerdict,
		OptionA:       optionA,
		OptionB:       optionB,
		Round1Results: round1,
		Round2Results: round2,
		Model:         model,
	}
}

// Validate checks the variant-specific required fields.
func (r *StreamRequest) Validate() error {
	if r.OptionA == "" || r.OptionB == "" {
		return fmt.Errorf("optionA and optionB are required")
	}
	switch r.Type {
	case StreamAgent:
		if !ValidAgent(r.AgentKey) {
			return fmt.Errorf("unknown agent key: %q", r.AgentKey)
		}
		if r.RoundNum != 1 && r.RoundNum != 2 {
			return fmt.Errorf("roundNum must be 1 or 2, got %d", r.RoundNum)
		}
		return nil
	case StreamVerdict:
		return nil
	default:
		return fmt.Errorf("unknown stream request type: %q", r.Type)
	}
}
