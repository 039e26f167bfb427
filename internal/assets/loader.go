package assets

import (
	"fmt"
	"path"
	"strings"
)

// AssetLoader reads the stylesheet and page templates of the chrome engine.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// kind locates one family of assets under a loader root.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// relPath returns the slash-separated path of name, relative to the root.
func (k kind) relPath(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	return path.Join(k.dir, name+k.ext), nil
}

// ValidateAssetName rejects names that are empty or could leave the asset
// directory or change the file extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
