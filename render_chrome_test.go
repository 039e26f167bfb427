package carto2pdf

// Notes:
// - chromeRenderer is built from the embedded assets with newChromeRenderer;
//   its pageRenderer is replaced by a mock so no browser is started.
// - The mock reads the temp HTML file during the call, since Render removes
//   it afterwards.

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-carto2pdf/internal/assets"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPageRenderer struct {
	path   string
	html   string
	opts   *proto.PagePrintToPDF
	output []byte
	err    error
	closed bool
}

func (m *mockPageRenderer) RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error) {
	m.path = filePath
	m.opts = opts
	if data, err := os.ReadFile(filePath); err == nil {
		m.html = string(data)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPageRenderer) Close() error {
	m.closed = true
	return nil
}

func newTestChromeRenderer(t *testing.T, pages pageRenderer) *chromeRenderer {
	t.Helper()
	resolver, err := assets.NewAssetResolver("")
	if err != nil {
		t.Fatal(err)
	}
	r, err := newChromeRenderer(resolver, time.Second)
	if err != nil {
		t.Fatalf("newChromeRenderer() error = %v", err)
	}
	r.pages = pages
	return r
}

// ---------------------------------------------------------------------------
// TestChromeRenderer - HTML stages
// ---------------------------------------------------------------------------

func TestChromeRenderer_Render(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{}
	r := newTestChromeRenderer(t, mock)

	out, err := r.Render(context.Background(), sampleDocument(t, 2), &renderOptions{
		Logo:   &Logo{Name: "logo.png", Type: "PNG", Data: testPNG(t)},
		Footer: DefaultFooter(),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(out) != "%PDF-1.4 mock" {
		t.Errorf("Render() = %q", out)
	}
	if !strings.HasSuffix(mock.path, ".html") {
		t.Errorf("rendered file = %q, want .html", mock.path)
	}
	if _, err := os.Stat(mock.path); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp HTML file was not removed")
	}

	for _, want := range []string{
		`<html lang="fr">`,
		"<title>Tiers lieu marsien : Collectif eco-citoyen</title>",
		"<style>",
		"rgb(84, 177, 95)",
		"<h2>Tiers lieu marsien : Collectif eco-citoyen</h2>",
		"<h3>Atelier A</h3>",
		"Lundi: 9h-12h",
		"<br />",
		`<img src="data:image/png;base64,`,
		`alt="logo"`,
	} {
		if !strings.Contains(mock.html, want) {
			t.Errorf("HTML does not contain %q", want)
		}
	}

	logoAt := strings.Index(mock.html, `class="logo"`)
	titleAt := strings.Index(mock.html, "<h2>")
	if logoAt == -1 || logoAt > titleAt {
		t.Errorf("logo (at %d) should precede the first title (at %d)", logoAt, titleAt)
	}

	if !mock.opts.DisplayHeaderFooter || !strings.Contains(mock.opts.FooterTemplate, "pageNumber") {
		t.Errorf("print options = %+v, want footer with page number", mock.opts)
	}
}

func TestChromeRenderer_NoLogo(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{}
	r := newTestChromeRenderer(t, mock)

	if _, err := r.Render(context.Background(), sampleDocument(t, 1), nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(mock.html, "<img") {
		t.Error("HTML contains an image without a logo")
	}
	if mock.opts.DisplayHeaderFooter {
		t.Error("footer enabled without a Footer")
	}
}

func TestChromeRenderer_EscapesCatalogueHTML(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{}
	r := newTestChromeRenderer(t, mock)

	doc := Compose(mustParse(t, `{"data":[{"name":"<script>alert(1)</script>","details":"a & b"}]}`), Intro{}, Labels{})
	if _, err := r.Render(context.Background(), doc, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(mock.html, "<script>") {
		t.Error("catalogue markup reached the HTML unescaped")
	}
	if !strings.Contains(mock.html, "&lt;script&gt;") {
		t.Error("escaped entity name missing")
	}
}

func TestChromeRenderer_PageError(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{err: ErrBrowserConnect}
	r := newTestChromeRenderer(t, mock)

	_, err := r.Render(context.Background(), sampleDocument(t, 1), nil)
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("error = %v, want ErrBrowserConnect", err)
	}
}

func TestChromeRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{}
	r := newTestChromeRenderer(t, mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, sampleDocument(t, 1), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if mock.path != "" {
		t.Error("page renderer called after cancellation")
	}
}

func TestChromeRenderer_Close(t *testing.T) {
	t.Parallel()

	mock := &mockPageRenderer{}
	r := newTestChromeRenderer(t, mock)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.closed {
		t.Error("page renderer not closed")
	}
}

// ---------------------------------------------------------------------------
// TestBuildPrintOptions / TestBuildFooterTemplate
// ---------------------------------------------------------------------------

func TestBuildPrintOptions(t *testing.T) {
	t.Parallel()

	plain := buildPrintOptions(nil)
	if *plain.PaperWidth != a4WidthInches || *plain.PaperHeight != a4HeightInches {
		t.Errorf("paper = %v x %v, want A4", *plain.PaperWidth, *plain.PaperHeight)
	}
	if *plain.MarginBottom != marginInches || plain.DisplayHeaderFooter {
		t.Errorf("options without footer = %+v", plain)
	}
	if !plain.PrintBackground {
		t.Error("PrintBackground = false, title fills would be lost")
	}

	withFooter := buildPrintOptions(DefaultFooter())
	if *withFooter.MarginBottom != marginBottomWithFooter || !withFooter.DisplayHeaderFooter {
		t.Errorf("options with footer = %+v", withFooter)
	}
}

func TestBuildFooterTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		footer *Footer
		want   string // substring, "" means empty template
	}{
		{name: "nil", footer: nil},
		{name: "nothing to show", footer: &Footer{}},
		{name: "page number", footer: DefaultFooter(), want: `Page <span class="pageNumber"></span>`},
		{
			name:   "all parts",
			footer: &Footer{ShowPageNumber: true, Date: "04/03/2026", Text: "Collectif"},
			want:   `Page <span class="pageNumber"></span> - 04/03/2026 - Collectif`,
		},
		{name: "escaped text", footer: &Footer{Text: "A & <B>"}, want: "A &amp; &lt;B&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildFooterTemplate(tt.footer)
			if tt.want == "" {
				if got != "" {
					t.Errorf("buildFooterTemplate() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("buildFooterTemplate() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestLogoData(t *testing.T) {
	t.Parallel()

	data := logoData(&Logo{Name: "marque.gif", Type: "GIF", Data: []byte("GIF89a")})
	if want := "data:image/gif;base64,R0lGODlh"; string(data.Src) != want {
		t.Errorf("Src = %q, want %q", data.Src, want)
	}
	if data.Alt != "marque" {
		t.Errorf("Alt = %q, want %q", data.Alt, "marque")
	}
}
