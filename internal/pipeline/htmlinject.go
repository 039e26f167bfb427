package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrLogoRender indicates the logo template could not be rendered.
var ErrLogoRender = errors.New("logo template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	if pos := afterBodyTag(htmlContent, lowerHTML); pos != -1 {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// LogoData holds the logo drawn at the top of the first page.
type LogoData struct {
	Src template.URL // data: URI or file:// URL
	Alt string
}

// LogoInjector defines the contract for logo injection into HTML.
type LogoInjector interface {
	InjectLogo(ctx context.Context, htmlContent string, data *LogoData) (string, error)
}

// LogoInjection renders and injects the logo block into HTML content.
type LogoInjection struct {
	tmpl *template.Template
}

// NewLogoInjection creates a LogoInjection from template content.
func NewLogoInjection(tmplContent string) (*LogoInjection, error) {
	tmpl, err := template.New("logo").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing logo template: %w", err)
	}
	return &LogoInjection{tmpl: tmpl}, nil
}

// InjectLogo renders the logo template and injects it right after <body>.
// If data is nil, returns htmlContent unchanged.
func (l *LogoInjection) InjectLogo(ctx context.Context, htmlContent string, data *LogoData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLogoRender, err)
	}

	logoHTML := buf.String()
	if pos := afterBodyTag(htmlContent, strings.ToLower(htmlContent)); pos != -1 {
		return htmlContent[:pos] + logoHTML + htmlContent[pos:], nil
	}
	return logoHTML + htmlContent, nil
}

// afterBodyTag returns the index just past the opening <body...> tag, or -1.
func afterBodyTag(htmlContent, lowerHTML string) int {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return -1
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}
