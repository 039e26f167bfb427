package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader reads overrides from a user directory laid out like the
// embedded assets: styles/<name>.css and templates/<name>.html.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader checks that dir is a readable directory.
// Returns ErrInvalidBasePath otherwise.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	switch _, err := os.ReadDir(root); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
	default:
		// ReadDir on a regular file fails too; report it plainly.
		if info, statErr := os.Stat(root); statErr == nil && !info.IsDir() {
			return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
		}
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{root: root}, nil
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.read(styleKind, name)
}

func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.read(templateKind, name)
}

func (f *FilesystemLoader) read(k kind, name string) (string, error) {
	rel, err := k.relPath(name)
	if err != nil {
		return "", err
	}

	target := filepath.Join(f.root, filepath.FromSlash(rel))
	if err := f.contains(target); err != nil {
		return "", err
	}

	content, err := os.ReadFile(target) // #nosec G304 -- contained in root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", k.notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// contains rejects a target whose real path leaves root, e.g. through a
// symlinked stylesheet.
func (f *FilesystemLoader) contains(target string) error {
	// A missing file keeps its unresolved path; reading it fails later.
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	if !strings.HasPrefix(target, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is outside %s", ErrPathTraversal, target, f.root)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
