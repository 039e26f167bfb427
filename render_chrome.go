package carto2pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-carto2pdf/internal/assets"
	"github.com/alnah/go-carto2pdf/internal/fileutil"
	"github.com/alnah/go-carto2pdf/internal/pipeline"
	"github.com/alnah/go-carto2pdf/internal/process"
)

// A4 page in inches, as Chrome's print API expects.
const (
	a4WidthInches          = 8.27
	a4HeightInches         = 11.69
	marginInches           = 0.4
	marginBottomWithFooter = 0.6
)

// pageRenderer prints a local HTML file to PDF. Separated from chromeRenderer
// so the HTML stages can be tested without a browser.
type pageRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error)
	Close() error
}

var _ pageRenderer = (*rodRenderer)(nil)

// chromeRenderer lays the document out as HTML and prints it with headless
// Chrome. The browser is started on first use and reused until Close.
type chromeRenderer struct {
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	logoInjector  pipeline.LogoInjector
	style         string
	pages         pageRenderer
}

// newChromeRenderer builds the HTML stages from the resolved assets.
func newChromeRenderer(loader *assets.AssetResolver, timeout time.Duration) (*chromeRenderer, error) {
	bundle, err := loader.LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	conv, err := pipeline.NewGoldmarkConverter(bundle.DocumentTemplate)
	if err != nil {
		return nil, fmt.Errorf("initializing HTML converter: %w", err)
	}
	logo, err := pipeline.NewLogoInjection(bundle.LogoTemplate)
	if err != nil {
		return nil, fmt.Errorf("initializing logo injector: %w", err)
	}

	return &chromeRenderer{
		htmlConverter: conv,
		cssInjector:   &pipeline.CSSInjection{},
		logoInjector:  logo,
		style:         bundle.Style,
		pages:         newRodRenderer(timeout),
	}, nil
}

// Render converts doc to a PDF through Markdown and HTML.
func (r *chromeRenderer) Render(ctx context.Context, doc *Document, opts *renderOptions) ([]byte, error) {
	htmlContent, err := r.buildHTML(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	var footer *Footer
	if opts != nil {
		footer = opts.Footer
	}
	return r.pages.RenderFromFile(ctx, tmpPath, buildPrintOptions(footer))
}

// buildHTML runs the Markdown, HTML, CSS and logo stages.
func (r *chromeRenderer) buildHTML(ctx context.Context, doc *Document, opts *renderOptions) (string, error) {
	md := documentMarkdown(doc)

	htmlContent, err := r.htmlConverter.ToHTML(ctx, doc.Title, md)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	htmlContent = r.cssInjector.InjectCSS(ctx, htmlContent, r.style)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var logo *pipeline.LogoData
	if opts != nil && opts.Logo != nil {
		logo = logoData(opts.Logo)
	}
	htmlContent, err = r.logoInjector.InjectLogo(ctx, htmlContent, logo)
	if err != nil {
		return "", fmt.Errorf("%w: injecting logo: %v", ErrHTMLConversion, err)
	}
	return htmlContent, nil
}

// Close stops the browser, if one was started.
func (r *chromeRenderer) Close() error {
	if r.pages != nil {
		return r.pages.Close()
	}
	return nil
}

// logoData embeds the logo as a data URI so the page has no external files.
func logoData(l *Logo) *pipeline.LogoData {
	uri := "data:" + l.mimeType() + ";base64," + base64.StdEncoding.EncodeToString(l.Data)
	return &pipeline.LogoData{
		Src: template.URL(uri), // #nosec G203 -- built from image bytes, not user markup
		Alt: strings.TrimSuffix(l.Name, "."+strings.ToLower(l.Type)),
	}
}

// buildPrintOptions returns A4 print settings with the footer, if any.
func buildPrintOptions(f *Footer) *proto.PagePrintToPDF {
	opts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(a4WidthInches),
		PaperHeight:     floatPtr(a4HeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}

	if tmpl := buildFooterTemplate(f); tmpl != "" {
		opts.MarginBottom = floatPtr(marginBottomWithFooter)
		opts.DisplayHeaderFooter = true
		opts.HeaderTemplate = "<span></span>"
		opts.FooterTemplate = tmpl
	}
	return opts
}

// buildFooterTemplate mirrors the fpdf footer ("Page N - date - text") with
// Chrome's pageNumber placeholder. Returns "" when there is nothing to show.
func buildFooterTemplate(f *Footer) string {
	if f == nil {
		return ""
	}

	var parts []string
	if f.ShowPageNumber {
		parts = append(parts, `Page <span class="pageNumber"></span>`)
	}
	if f.Date != "" {
		parts = append(parts, html.EscapeString(f.Date))
	}
	if f.Text != "" {
		parts = append(parts, html.EscapeString(f.Text))
	}
	if len(parts) == 0 {
		return ""
	}

	return `<div style="font-size: 8px; font-family: Helvetica, Arial, sans-serif; font-style: italic; ` +
		`width: 100%; text-align: center;">` + strings.Join(parts, " - ") + `</div>`
}

func floatPtr(v float64) *float64 {
	return &v
}

// rodRenderer implements pageRenderer using go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	// Pre-installed browser (Docker/containerized environments).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.killBrowser()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *proto.PagePrintToPDF) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// Close disconnects from the browser and terminates its process tree.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killBrowser()
	return err
}

func (r *rodRenderer) killBrowser() {
	if r.launcher == nil {
		return
	}
	// Renderer and GPU children survive a plain kill on some platforms.
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}
