package render

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Body and footer text uses a literal `\n` marker for paragraph breaks,
// as stored in the declaration templates.
const lineBreakMarker = `\n`

// PDFGenerator lays out a rendered declaration as an A4 document.
type PDFGenerator struct {
	letterhead   string
	contactEmail string
}

func NewPDFGenerator(letterhead, contactEmail string) *PDFGenerator {
	return &PDFGenerator{letterhead: letterhead, contactEmail: contactEmail}
}

// Generate produces the document bytes: centered bold title, justified
// indented body paragraphs, centered footer lines and the organization
// letterhead pinned to the bottom margin.
func (g *PDFGenerator) Generate(title, body, footer string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(75, 72, 75)
	pdf.SetAutoPageBreak(true, 72)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetY(170)
	pdf.SetFont("Times", "B", 14)
	pdf.MultiCell(0, 18, tr(title), "", "C", false)
	pdf.Ln(56)

	pdf.SetFont("Times", "", 14)
	for _, paragraph := range strings.Split(body, lineBreakMarker) {
		// Leading spaces stand in for the first-line indent.
		pdf.MultiCell(0, 26, tr("          "+strings.TrimSpace(paragraph)), "", "J", false)
		pdf.Ln(14)
	}
	pdf.Ln(14)

	for _, line := range strings.Split(footer, lineBreakMarker) {
		pdf.MultiCell(0, 16, tr(line), "", "C", false)
	}

	// Letterhead sits inside the bottom margin, on the first page only
	// in practice since declarations are single-page documents.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetY(-54)
	pdf.SetFont("Times", "", 9)
	pdf.MultiCell(0, 11, tr(g.letterhead), "", "C", false)
	pdf.MultiCell(0, 11, tr("E-mail: "+g.contactEmail), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
