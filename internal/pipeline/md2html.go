package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultPageTemplate wraps Goldmark's fragment output in a complete HTML5
// document when no page template asset is supplied.
const DefaultPageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>`

// PageData is the data passed to the page template.
type PageData struct {
	Lang  string
	Title string
	Body  template.HTML
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md   goldmark.Markdown
	page *template.Template
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// pageTemplate is an html/template receiving PageData; empty uses
// DefaultPageTemplate.
func NewGoldmarkConverter(pageTemplate string) (*GoldmarkConverter, error) {
	if pageTemplate == "" {
		pageTemplate = DefaultPageTemplate
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // URLs in details and websites become links
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // one catalogue line per source line
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md, page: page}, nil
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var body bytes.Buffer
		if err := c.md.Convert([]byte(content), &body); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}

		var page bytes.Buffer
		data := PageData{
			Lang:  "fr",
			Title: title,
			Body:  template.HTML(body.String()), // #nosec G203 -- goldmark output, raw HTML disabled
		}
		if err := c.page.Execute(&page, data); err != nil {
			done <- result{err: fmt.Errorf("%w: rendering page template: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: page.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
