// Package export renders finished debates to various formats.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// Format represents an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatJSON     Format = "json"
)

// Transcript is a completed debate ready for export.
type Transcript struct {
	OptionA   string              `json:"optionA"`
	OptionB   string              `json:"optionB"`
	Category  string              `json:"category,omitempty"`
	Theme     core.ThemeKey       `json:"theme"`
	Messages  []core.AgentMessage `json:"messages"`
	Verdict   *core.Verdict       `json:"verdict,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Title renders the matchup headline.
func (t *Transcript) Title() string {
	return fmt.Sprintf("%s vs %s", t.OptionA, t.OptionB)
}

// Exporter defines the interface for exporting transcripts.
type Exporter interface {
	Export(transcript *Transcript, w io.Writer) error
	FileExtension() string
}

// GetExporter returns an exporter for the given format.
func GetExporter(format Format) (Exporter, error) {
	switch format {
	case FormatMarkdown:
		return &MarkdownExporter{}, nil
	case FormatPDF:
		return &PDFExporter{}, nil
	case FormatJSON:
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// GenerateFilename creates a filename for the export.
func GenerateFilename(transcript *Transcript, ext string) string {
	title := transcript.Title()
	if len(title) > 50 {
		title = title[:50]
	}

	// Replace unsafe characters
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	title = replacer.Replace(title)

	timestamp := transcript.CreatedAt.Format("20060102")
	return fmt.Sprintf("debate_%s_%s.%s", timestamp, title, ext)
}

// Helper to format an agent's display name
func agentName(key core.AgentKey) string {
	return prompt.Agent(key).Name
}

// Helper to format the verdict's confidence
func confidenceLabel(v *core.Verdict) string {
	if v.Confidence == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d%%", *v.Confidence)
}
