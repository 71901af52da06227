package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// PDFExporter exports transcripts to PDF format.
type PDFExporter struct{}

// Per-agent header fill colors, roughly matching the web UI accents.
var agentFill = map[core.AgentKey][3]int{
	core.AgentAnalyst:    {210, 230, 255}, // Light blue
	core.AgentContrarian: {255, 215, 210}, // Light red
	core.AgentPragmatist: {215, 245, 220}, // Light green
	core.AgentWildcard:   {235, 220, 250}, // Light purple
}

// Export writes the transcript as PDF.
func (e *PDFExporter) Export(transcript *Transcript, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 10, e.sanitizeText(transcript.Title()), "", "C", false)
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Debate Information")
	pdf.Ln(8)

	theme := prompt.ThemeByKey(transcript.Theme)
	pdf.SetFont("Arial", "", 10)
	e.addMetadataRow(pdf, "Option A:", e.sanitizeText(transcript.OptionA))
	e.addMetadataRow(pdf, "Option B:", e.sanitizeText(transcript.OptionB))
	if transcript.Category != "" {
		e.addMetadataRow(pdf, "Category:", transcript.Category)
	}
	e.addMetadataRow(pdf, "Theme:", theme.Label)
	e.addMetadataRow(pdf, "Date:", transcript.CreatedAt.Format("January 2, 2006 at 3:04 PM"))
	pdf.Ln(5)

	// Debate content
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Debate")
	pdf.Ln(8)

	if len(transcript.Messages) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, "No messages recorded.")
		pdf.Ln(6)
	} else {
		for _, msg := range transcript.Messages {
			if pdf.GetY() > 250 {
				pdf.AddPage()
			}

			fill := agentFill[msg.AgentKey]
			pdf.SetFillColor(fill[0], fill[1], fill[2])

			pdf.SetFont("Arial", "B", 10)
			header := fmt.Sprintf("Round %d - %s", msg.Round, agentName(msg.AgentKey))
			pdf.CellFormat(0, 7, header, "", 1, "", true, 0, "")

			pdf.SetFont("Arial", "", 9)
			pdf.SetFillColor(255, 255, 255)
			pdf.MultiCell(0, 5, e.sanitizeText(msg.Text), "", "", false)
			pdf.Ln(5)
		}
	}

	// Verdict
	if transcript.Verdict != nil {
		if pdf.GetY() > 230 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Verdict")
		pdf.Ln(8)

		if transcript.Verdict.Winner != "" {
			pdf.SetFillColor(255, 240, 200) // Light gold
			pdf.SetFont("Arial", "B", 10)
			banner := fmt.Sprintf("Winner: %s (confidence: %s)", e.sanitizeText(transcript.Verdict.Winner), confidenceLabel(transcript.Verdict))
			pdf.CellFormat(0, 7, banner, "", 1, "", true, 0, "")
		}

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(255, 255, 255)
		pdf.MultiCell(0, 5, e.sanitizeText(transcript.Verdict.FullText), "", "", false)
		pdf.Ln(3)
	}

	// Footer
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 10, "Exported from SplitDecision", "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

// FileExtension returns the file extension for PDF.
func (e *PDFExporter) FileExtension() string {
	return "pdf"
}

// Helper to add a metadata row
func (e *PDFExporter) addMetadataRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(30, 5, label)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, value)
	pdf.Ln(5)
}

// Sanitize text for PDF (remove problematic characters)
func (e *PDFExporter) sanitizeText(text string) string {
	// gofpdf uses Windows-1252 encoding by default
	replacer := strings.NewReplacer(
		"‘", "'", // Left single quote
		"’", "'", // Right single quote
		"“", "\"", // Left double quote
		"”", "\"", // Right double quote
		"–", "-", // En dash
		"—", "--", // Em dash
		"…", "...", // Ellipsis
		"•", "*", // Bullet
		" ", " ", // Non-breaking space
	)
	return replacer.Replace(text)
}
