package core

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	winnerRe     = regexp.MustCompile(`WINNER:\s*(.+)`)
	confidenceRe = regexp.MustCompile(`CONFIDENCE:\s*(\d+)`)
)

// ParseVerdict extracts the winner and confidence score from verdict text.
// It is called on every fragment against the whole accumulated buffer, so a
// prefix parse is a best-effort preview: a value extracted early can in
// principle be restated later in the stream. Parsing the complete text is
// deterministic and idempotent.
//
// The winner resolves to the canonical option label when the model's stated
// winner contains it (case-insensitively), otherwise the raw trimmed
// remainder is kept verbatim. Confidence is clamped to [50, 95]; text with
// no digits after the label yields a nil confidence, never zero.
func ParseVerdict(text, optionA, optionB string) (winner string, confidence *int) {
	if m := winnerRe.FindStringSubmatch(text); m != nil {
		raw := strings.TrimSpace(m[1])
		lower := strings.ToLower(raw)
		switch {
		case strings.Contains(lower, strings.ToLower(optionA)):
			winner = optionA
		case strings.Contains(lower, strings.ToLower(optionB)):
			winner = optionB
		default:
			winner = raw
		}
	}

	if m := confidenceRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			n = ClampConfidence(n)
			confidence = &n
		}
	}

	return winner, confidence
}
