package carto2pdf

import (
	"context"
	"fmt"

	"github.com/alnah/go-carto2pdf/internal/assets"
)

// Converter composes catalogues into documents and renders them to PDF.
// Create with NewConverter, use Convert for each catalogue, and Close when done.
// A Converter is not safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	renderer renderer
}

// NewConverter creates a Converter. The fpdf engine is used unless
// WithEngine selects another one.
// Returns ErrInvalidEngine for an unknown engine and ErrInvalidAssetPath when
// WithAssetPath names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout, engine: EngineFPDF},
	}
	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	// Renderer may already be set by tests.
	if c.renderer != nil {
		return c, nil
	}

	switch engine {
	case EngineChrome:
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		cr, err := newChromeRenderer(resolver, c.cfg.timeout)
		if err != nil {
			return nil, err
		}
		c.renderer = cr
	default:
		c.renderer = newFpdfRenderer()
	}
	return c, nil
}

// Engine returns the engine selected for this converter.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert composes input into a document and renders it.
// The context is used for cancellation; the converter timeout bounds the call.
// Internal panics are recovered and returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	doc := Compose(input.Catalogue, input.Intro, input.Labels)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf, err := c.renderer.Render(ctx, doc, &renderOptions{
		Logo:   input.Logo,
		Footer: input.Footer,
		Date:   input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	return &ConvertResult{Document: doc, PDF: pdf}, nil
}

// Close releases renderer resources (the headless browser of the chrome engine).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
