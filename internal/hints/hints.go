// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-carto2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors of the chrome
// engine. It suggests the ROD_* variables relevant to the environment.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or use --engine fpdf, which needs no browser")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the timeout.
func ForTimeout() string {
	return format("for large catalogues, use --timeout flag")
}

// ForConfigNotFound suggests --config and the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-carto2pdf/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForCatalogueNotFound returns hints when the input file is missing.
func ForCatalogueNotFound() string {
	return format("export the map data as elements.json or pass --input /path/to/file.json")
}

// ForCatalogueParse returns hints for malformed catalogue files.
func ForCatalogueParse() string {
	return format(`expected a JSON object with a "data" array of entities`)
}

// ForLogoNotFound returns hints when the logo file is missing.
func ForLogoNotFound() string {
	return format("place logo.png next to the input or pass --logo /path/to/logo.png (or --logo \"\" to skip)")
}

// ForUnsupportedImage lists the logo formats the renderers accept.
func ForUnsupportedImage() string {
	return format("supported formats: PNG, JPEG, GIF")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
