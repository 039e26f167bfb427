package carto2pdf

import "github.com/alnah/go-carto2pdf/internal/pipeline"

// Markdown heading levels. Level 1 is left to the page title.
const (
	titleHeadingLevel  = 2
	entityHeadingLevel = 3
)

// documentMarkdown writes doc as CommonMark for the chrome engine.
// Titles become level-2 headings and entity names level-3 headings. Each
// group of entity lines (opening hours, special hours, fields) is one
// paragraph with a line per entry.
func documentMarkdown(doc *Document) string {
	var w pipeline.MarkdownWriter
	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockTitle:
			w.Heading(titleHeadingLevel, b.Text)
		case BlockParagraph:
			w.Paragraph(b.Text)
		case BlockEntity:
			writeEntityMarkdown(&w, b.Entity)
		}
	}
	return w.String()
}

func writeEntityMarkdown(w *pipeline.MarkdownWriter, e *EntityBlock) {
	if e == nil {
		return
	}
	w.Heading(entityHeadingLevel, e.Name)
	if len(e.Hours) > 0 {
		w.LabeledParagraph(e.HoursHeading, e.Hours...)
	}
	if e.SpecialHours != "" {
		w.LabeledParagraph(e.SpecialHeading, e.SpecialHours)
	}
	w.Paragraph(e.Fields...)
}
