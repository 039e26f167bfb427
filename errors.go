package carto2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Catalogue loading errors.
	ErrCatalogueRead  = errors.New("failed to read catalogue")
	ErrCatalogueParse = errors.New("failed to parse catalogue")

	// Logo errors.
	ErrLogoNotFound     = errors.New("logo file not found")
	ErrLogoRead         = errors.New("failed to read logo")
	ErrUnsupportedImage = errors.New("unsupported image type")

	// Rendering errors.
	ErrInvalidEngine  = errors.New("invalid rendering engine")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Output errors.
	ErrWritePDF = errors.New("failed to write PDF file")

	// Asset errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
