// Package source abstracts where the tooling reads markup documents from.
//
// The library core never touches a Source; only the CLI and the preview
// server do, so they can hydrate documents held on local disk or in object
// storage through the same path.
package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source yields named markup documents.
type Source interface {
	// Open returns the document's content. The name is a slash-separated
	// relative path, e.g. "index.html" or "docs/page.html".
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Dir serves documents from a local directory.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at root.
func NewDir(root string) Dir {
	return Dir{root: root}
}

// Open opens the named file under the root. Paths escaping the root are
// rejected.
func (d Dir) Open(_ context.Context, name string) (io.ReadCloser, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "index.html"
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("open %q: invalid path", name)
	}
	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return f, nil
}
