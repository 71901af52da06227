package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alienxp03/splitdecision/internal/prompt"
)

// MarkdownExporter exports transcripts to Markdown format.
type MarkdownExporter struct{}

// Export writes the transcript as Markdown.
func (e *MarkdownExporter) Export(transcript *Transcript, w io.Writer) error {
	var sb strings.Builder

	// Title
	sb.WriteString(fmt.Sprintf("# %s\n\n", transcript.Title()))

	// Metadata
	theme := prompt.ThemeByKey(transcript.Theme)
	sb.WriteString("## Debate Information\n\n")
	sb.WriteString(fmt.Sprintf("- **Option A:** %s\n", transcript.OptionA))
	sb.WriteString(fmt.Sprintf("- **Option B:** %s\n", transcript.OptionB))
	if transcript.Category != "" {
		sb.WriteString(fmt.Sprintf("- **Category:** %s\n", transcript.Category))
	}
	sb.WriteString(fmt.Sprintf("- **Theme:** %s %s\n", theme.Emoji, theme.Label))
	sb.WriteString(fmt.Sprintf("- **Date:** %s\n", transcript.CreatedAt.Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("\n")

	// Debate content grouped by round
	sb.WriteString("## Debate\n\n")

	if len(transcript.Messages) == 0 {
		sb.WriteString("*No messages recorded.*\n\n")
	} else {
		currentRound := 0
		for _, msg := range transcript.Messages {
			if msg.Round != currentRound {
				currentRound = msg.Round
				sb.WriteString(fmt.Sprintf("### Round %d\n\n", currentRound))
			}

			info := prompt.Agent(msg.AgentKey)
			sb.WriteString(fmt.Sprintf("#### %s %s\n\n", info.Emoji, info.Name))
			sb.WriteString(msg.Text)
			sb.WriteString("\n\n---\n\n")
		}
	}

	// Verdict
	if transcript.Verdict != nil {
		sb.WriteString("## Verdict\n\n")
		if transcript.Verdict.Winner != "" {
			sb.WriteString(fmt.Sprintf("**🏆 Winner: %s** (confidence: %s)\n\n", transcript.Verdict.Winner, confidenceLabel(transcript.Verdict)))
		}
		sb.WriteString(transcript.Verdict.FullText)
		sb.WriteString("\n\n")
	}

	// Footer
	sb.WriteString("---\n\n")
	sb.WriteString("*Exported from SplitDecision*\n")

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return "md"
}
