package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the catalogue stylesheet and templates compiled into
// the binary.
type EmbeddedLoader struct {
	fs embed.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fs: builtin}
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.read(styleKind, name)
}

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.read(templateKind, name)
}

func (e *EmbeddedLoader) read(k kind, name string) (string, error) {
	rel, err := k.relPath(name)
	if err != nil {
		return "", err
	}
	content, err := e.fs.ReadFile(rel)
	if err != nil {
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	}
	return string(content), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
