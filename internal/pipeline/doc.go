// Package pipeline implements the HTML stages of the chrome engine.
//
// The root carto2pdf package writes a composed document as Markdown; this
// package turns that Markdown into a standalone HTML page and decorates it:
//   - Markdown to HTML conversion via Goldmark, wrapped in a page template
//   - CSS injection into the page head
//   - Logo injection at the top of the first page
//
// PDF generation is handled by the root package using headless Chrome
// (go-rod), which also owns page size, margins and the page number footer.
package pipeline
