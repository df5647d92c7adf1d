package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Detail is a labeled value shown in the report header section.
type Detail struct {
	Label string
	Value string
}

// Report describes a pitch report to be rendered as an A4 PDF. The body is
// the generated prose; "## " headings and **bold** spans in it are given
// their own styling, and the output paginates across as many pages as the
// text needs.
type Report struct {
	Title       string
	Details     []Detail
	BodyHeading string
	Body        string
}

const (
	marginMM    = 15
	titleSize   = 18
	headingSize = 13
	bodySize    = 11
	lineHeight  = 6
)

// Build renders the report and returns the PDF bytes.
func (r Report) Build() ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, 10, tr(r.Title), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if len(r.Details) > 0 {
		doc.SetFont("Helvetica", "B", headingSize)
		doc.CellFormat(0, 8, "Pitch Details", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", bodySize)
		for _, d := range r.Details {
			doc.SetFont("Helvetica", "B", bodySize)
			doc.CellFormat(35, lineHeight, tr(d.Label+":"), "", 0, "L", false, 0, "")
			doc.SetFont("Helvetica", "", bodySize)
			doc.MultiCell(0, lineHeight, tr(d.Value), "", "L", false)
		}
		doc.Ln(4)
	}

	if r.BodyHeading != "" {
		doc.SetFont("Helvetica", "B", headingSize)
		doc.CellFormat(0, 8, tr(r.BodyHeading), "", 1, "L", false, 0, "")
	}

	doc.SetFont("Helvetica", "", bodySize)
	for _, line := range strings.Split(r.Body, "\n") {
		writeBodyLine(doc, tr, line)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writeBodyLine renders one line of generated prose, styling markdown-ish
// headings and fully-bold lines, stripping inline bold markers otherwise.
func writeBodyLine(doc *fpdf.Fpdf, tr func(string) string, line string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		doc.Ln(lineHeight / 2)
	case strings.HasPrefix(trimmed, "#"):
		text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		doc.Ln(2)
		doc.SetFont("Helvetica", "B", headingSize)
		doc.MultiCell(0, lineHeight+1, tr(text), "", "L", false)
		doc.SetFont("Helvetica", "", bodySize)
	case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
		text := strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**")
		doc.SetFont("Helvetica", "B", bodySize)
		doc.MultiCell(0, lineHeight, tr(text), "", "L", false)
		doc.SetFont("Helvetica", "", bodySize)
	default:
		doc.MultiCell(0, lineHeight, tr(stripBoldMarkers(trimmed)), "", "L", false)
	}
}

func stripBoldMarkers(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
