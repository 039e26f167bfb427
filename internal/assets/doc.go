// Package assets provides the CSS style and HTML templates used by the
// chrome engine. Assets can be loaded from embedded files or a custom
// directory.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. A custom directory may
// override a single asset and keep the built-in ones for the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── catalogue.css        # page style
//	└── templates/
//	    ├── document.html        # page skeleton (Lang, Title, Body)
//	    └── logo.html            # logo block (Src, Alt)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
