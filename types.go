package carto2pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Engine selects the PDF backend.
type Engine string

// Supported engines.
const (
	// EngineFPDF lays the document out natively in millimetres (default).
	EngineFPDF Engine = "fpdf"
	// EngineChrome renders Markdown -> HTML -> PDF through headless Chrome.
	EngineChrome Engine = "chrome"
)

// ParseEngine returns the engine named s (case-insensitive). Empty means EngineFPDF.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineFPDF:
		return EngineFPDF, nil
	case EngineChrome:
		return EngineChrome, nil
	default:
		return "", fmt.Errorf("%w: %q (must be fpdf or chrome)", ErrInvalidEngine, s)
	}
}

// Input contains conversion parameters.
type Input struct {
	Catalogue *Catalogue // entities to list (nil = no entities)
	Intro     Intro      // empty fields use DefaultIntro
	Labels    Labels     // empty fields use DefaultLabels
	Logo      *Logo      // drawn on page 1 (nil = no logo)
	Footer    *Footer    // nil = no footer
	Date      time.Time  // PDF creation date (zero = now)
}

// ConvertResult holds the composed document and the rendered PDF.
type ConvertResult struct {
	Document *Document
	PDF      []byte
}

// Footer configures the text drawn at the bottom of every page.
type Footer struct {
	ShowPageNumber bool
	Date           string // already resolved, e.g. "17/10/2026"
	Text           string
}

// DefaultFooter returns a footer showing only the page number.
func DefaultFooter() *Footer {
	return &Footer{ShowPageNumber: true}
}

// text builds the footer line for page n. Parts are joined with " - ".
func (f *Footer) text(n int) string {
	if f == nil {
		return ""
	}
	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, fmt.Sprintf("Page %d", n))
	}
	if f.Date != "" {
		parts = append(parts, f.Date)
	}
	if f.Text != "" {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " - ")
}

// Logo is an image read once and drawn on the first page.
type Logo struct {
	Name string // registration name, usually the file base name
	Type string // "PNG", "JPG" or "GIF"
	Data []byte
}

// LoadLogo reads a logo image. The image type is taken from the extension.
func LoadLogo(path string) (*Logo, error) {
	typ, err := imageType(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- logo path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrLogoRead, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrLogoRead, path)
	}

	return &Logo{Name: filepath.Base(path), Type: typ, Data: data}, nil
}

// mimeType returns the MIME type of the logo for data URIs.
func (l *Logo) mimeType() string {
	switch l.Type {
	case "JPG":
		return "image/jpeg"
	case "GIF":
		return "image/gif"
	default:
		return "image/png"
	}
}

func imageType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG", nil
	case ".jpg", ".jpeg":
		return "JPG", nil
	case ".gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("%w: %q (use PNG, JPEG or GIF)", ErrUnsupportedImage, filepath.Ext(path))
	}
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	engine    Engine
	assetPath string
}

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("carto2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the PDF backend.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets used by the chrome engine.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
