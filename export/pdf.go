package export

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	NoteMarginX    = 15.0
	NoteMarginTop  = 20.0
	NoteLineWidth  = 180.0
	NoteFontSize   = 12.0
	NoteLineHeight = 6.0
)

// CanvasPDF puts a rendered PNG frame on a single page of the same size in points.
func CanvasPDF(w io.Writer, png []byte, width float64, height float64) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: width,
			Ht: height,
		},
	})

	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("pedigree", opt, bytes.NewReader(png))
	pdf.ImageOptions("pedigree", 0, 0, width, height, false, opt, 0, "")

	return pdf.Output(w)
}

// NarrativePDF lays text out over A4 pages with fixed margins and wrapping.
func NarrativePDF(w io.Writer, title string, text string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(NoteMarginX, NoteMarginTop, NoteMarginX)
	pdf.SetAutoPageBreak(true, NoteMarginTop)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		pdf.SetTitle(title, true)
		pdf.SetFont("Helvetica", "B", NoteFontSize+2)
		pdf.MultiCell(NoteLineWidth, NoteLineHeight+2, tr(title), "", "L", false)
		pdf.Ln(NoteLineHeight)
	}

	pdf.SetFont("Helvetica", "", NoteFontSize)
	pdf.MultiCell(NoteLineWidth, NoteLineHeight, tr(strings.TrimSpace(text)), "", "L", false)

	return pdf.Output(w)
}
