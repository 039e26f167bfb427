package carto2pdf

import (
	"context"
	"time"
)

// renderer abstracts document layout so the composer can be tested without
// a PDF backend.
type renderer interface {
	Render(ctx context.Context, doc *Document, opts *renderOptions) ([]byte, error)
	Close() error
}

// Compile-time interface checks.
var (
	_ renderer = (*fpdfRenderer)(nil)
	_ renderer = (*chromeRenderer)(nil)
)

// renderOptions holds per-document rendering options.
type renderOptions struct {
	Logo   *Logo
	Footer *Footer
	Date   time.Time
	// uncompressed leaves content streams readable; used by tests.
	uncompressed bool
}
