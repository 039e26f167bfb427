package carto2pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres (A4 portrait).
const (
	fontFamily         = "Arial"
	autoBreakMargin    = 15.0
	footerOffset       = 15.0
	logoX              = 68.0
	logoY              = 25.0
	logoWidth          = 80.0
	firstPageOffset    = 117.0
	headerOffset       = 10.0
	entityBreakY       = 260.0 // start a new page after an entity ending below this line
	titleGap           = 15.0
	groupGap           = 3.0
	entityGap          = 5.0
	cellHeight         = 10.0
	entityLineHeight   = 8.0
	logoImageName      = "carto2pdf-logo"
	defaultCreatorName = "go-carto2pdf"
)

// titleFill is the background of title blocks.
var titleFill = struct{ r, g, b int }{84, 177, 95}

// fpdfLineStyle is the typesetting of one entity line style.
type fpdfLineStyle struct {
	style  string  // "", "B", "I"
	size   float64 // points
	height float64 // mm
	cell   bool    // single-line cell instead of a wrapping multi-cell
}

var fpdfLineStyles = map[LineStyle]fpdfLineStyle{
	StyleName:           {style: "B", size: 12, height: cellHeight, cell: true},
	StyleHoursHeading:   {style: "", size: 11, height: cellHeight, cell: true},
	StyleHours:          {style: "", size: 10, height: entityLineHeight},
	StyleSpecialHeading: {style: "B", size: 11, height: cellHeight, cell: true},
	StyleSpecialHours:   {style: "", size: 10, height: entityLineHeight},
	StyleField:          {style: "", size: 11, height: entityLineHeight},
}

// fpdfRenderer lays documents out with go-pdf/fpdf. Each Render call builds a
// fresh fpdf document, so the renderer itself holds no state.
type fpdfRenderer struct{}

func newFpdfRenderer() *fpdfRenderer {
	return &fpdfRenderer{}
}

// Render lays out doc and returns the serialized PDF.
func (r *fpdfRenderer) Render(ctx context.Context, doc *Document, opts *renderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &renderOptions{}
	}

	l := newFpdfLayout(doc.Title, opts)
	l.open()

	for _, b := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch b.Kind {
		case BlockTitle:
			l.title(b.Text)
		case BlockParagraph:
			l.paragraph(b.Text)
		case BlockEntity:
			l.entity(b.Entity)
		}
		if l.pdf.Err() {
			return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, l.pdf.Error())
		}
	}

	return l.finalize()
}

// Close is a no-op; fpdf holds no external resources.
func (r *fpdfRenderer) Close() error {
	return nil
}

// fpdfLayout is the page state of one document being rendered.
type fpdfLayout struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string // UTF-8 to cp1252
	opts *renderOptions
}

func newFpdfLayout(title string, opts *renderOptions) *fpdfLayout {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCompression(!opts.uncompressed)
	if !opts.Date.IsZero() {
		pdf.SetCreationDate(opts.Date)
		pdf.SetModificationDate(opts.Date)
	}
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.SetCreator(defaultCreatorName, false)
	pdf.SetFont(fontFamily, "", 12)

	return &fpdfLayout{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		opts: opts,
	}
}

// open registers the logo and starts the first page.
func (l *fpdfLayout) open() {
	if logo := l.opts.Logo; logo != nil {
		l.pdf.RegisterImageOptionsReader(logoImageName, fpdf.ImageOptions{ImageType: logo.Type}, bytes.NewReader(logo.Data))
	}
	l.pdf.SetHeaderFunc(l.header)
	l.pdf.SetFooterFunc(l.footer)
	l.pdf.SetAutoPageBreak(true, autoBreakMargin)
	l.pdf.AddPage()
}

// header places the logo on page 1 and a blank band on later pages.
func (l *fpdfLayout) header() {
	if l.pdf.PageNo() == 1 {
		if logo := l.opts.Logo; logo != nil {
			l.pdf.ImageOptions(logoImageName, logoX, logoY, logoWidth, 0, false,
				fpdf.ImageOptions{ImageType: logo.Type}, 0, "")
		}
		l.pdf.Ln(firstPageOffset)
		return
	}
	l.pdf.SetFont(fontFamily, "I", 10)
	l.pdf.CellFormat(0, cellHeight, "", "", 0, "C", false, 0, "")
	l.pdf.Ln(headerOffset)
}

func (l *fpdfLayout) footer() {
	text := Sanitize(l.opts.Footer.text(l.pdf.PageNo()))
	if text == "" {
		return
	}
	l.pdf.SetY(-footerOffset)
	l.pdf.SetFont(fontFamily, "I", 8)
	l.pdf.CellFormat(0, cellHeight, l.tr(text), "", 0, "C", false, 0, "")
}

func (l *fpdfLayout) title(text string) {
	l.pdf.SetFont(fontFamily, "B", 14)
	l.pdf.SetFillColor(titleFill.r, titleFill.g, titleFill.b)
	l.pdf.CellFormat(0, cellHeight, l.tr(text), "", 1, "L", true, 0, "")
	l.pdf.Ln(titleGap)
}

func (l *fpdfLayout) paragraph(text string) {
	l.pdf.SetFont(fontFamily, "", 12)
	l.pdf.MultiCell(0, cellHeight, l.tr(text), "", "J", false)
	l.pdf.Ln(-1)
}

// entity writes an entity block. Opening and special hours groups are
// followed by a small gap, and the block ends with a page break when it
// finishes too close to the bottom to hold the next header.
func (l *fpdfLayout) entity(b *EntityBlock) {
	lines := b.Lines()
	for i, line := range lines {
		st := fpdfLineStyles[line.Style]
		l.pdf.SetFont(fontFamily, st.style, st.size)
		if st.cell {
			l.pdf.CellFormat(0, st.height, l.tr(line.Text), "", 1, "", false, 0, "")
		} else {
			l.pdf.MultiCell(0, st.height, l.tr(line.Text), "", "J", false)
		}

		endsGroup := i+1 == len(lines) || lines[i+1].Style != line.Style
		if endsGroup && (line.Style == StyleHours || line.Style == StyleSpecialHours) {
			l.pdf.Ln(groupGap)
		}
	}
	l.pdf.Ln(entityGap)

	if l.pdf.GetY() > entityBreakY {
		l.pdf.AddPage()
	}
}

// finalize closes the document and serializes it. No drawing is valid afterwards.
func (l *fpdfLayout) finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}
