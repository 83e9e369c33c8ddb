package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDF layout constants (mm, A4 portrait). bottomLimit is the cursor position
// past which a new page starts; lines are placed whole, never split across a
// page boundary.
const (
	pdfMargin      = 20.0
	pdfTop         = 20.0
	pdfBottomLimit = 270.0
	bodyLineHeight = 6.0
	blankSpacing   = 3.0
	bulletIndent   = 5.0
)

type headingStyle struct {
	size   float64
	height float64
}

var headingStyles = map[int]headingStyle{
	1: {size: 18, height: 10},
	2: {size: 16, height: 8},
	3: {size: 14, height: 7},
}

// RenderPDF lays parsed blocks out on A4 pages. Inline bold inside a mixed
// line is approximated: a line containing any bold run is promoted to a whole
// bold line.
func RenderPDF(blocks []Block, title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin

	y := pdfTop

	newPageIfNeeded := func() {
		if y > pdfBottomLimit {
			pdf.AddPage()
			y = pdfTop
		}
	}

	for _, block := range blocks {
		switch block.Kind {
		case KindBlank:
			y += blankSpacing

		case KindHeading:
			style := headingStyles[block.Level]
			pdf.SetFont("Helvetica", "B", style.size)
			for _, line := range pdf.SplitText(tr(block.PlainText()), contentWidth) {
				newPageIfNeeded()
				pdf.Text(pdfMargin, y, line)
				y += style.height
			}
			pdf.SetFont("Helvetica", "", 12)

		case KindBullet:
			if block.HasBold() {
				pdf.SetFont("Helvetica", "B", 12)
			}
			lines := pdf.SplitText(tr(block.PlainText()), contentWidth-bulletIndent)
			for i, line := range lines {
				newPageIfNeeded()
				if i == 0 {
					pdf.Text(pdfMargin, y, tr("•"))
				}
				// Wrapped continuation lines keep the bullet indent
				pdf.Text(pdfMargin+bulletIndent, y, line)
				y += bodyLineHeight
			}
			pdf.SetFont("Helvetica", "", 12)

		default:
			if block.HasBold() {
				pdf.SetFont("Helvetica", "B", 12)
			}
			for _, line := range pdf.SplitText(tr(block.PlainText()), contentWidth) {
				newPageIfNeeded()
				pdf.Text(pdfMargin, y, line)
				y += bodyLineHeight
			}
			pdf.SetFont("Helvetica", "", 12)
		}

		newPageIfNeeded()
	}

	return pdf
}

// PDFBytes parses text and returns the rendered PDF document.
func PDFBytes(text, title string) ([]byte, error) {
	pdf := RenderPDF(Parse(text), title)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
