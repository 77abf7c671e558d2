// Package templates loads ordered HTML email templates from a directory.
//
// Every file whose name ends in ".html" (case-insensitive) is read, sorted
// lexicographically by filename, and returned as a slice of content
// strings. The slice order defines the template numbering used by the
// campaign rotation: the first file is template 1.
package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

var (
	// ErrDirNotFound indicates the templates directory does not exist.
	ErrDirNotFound = errors.New("templates directory not found")

	// ErrNoTemplates indicates the directory contains no HTML files.
	ErrNoTemplates = errors.New("no html templates found in templates directory")
)

// Load reads all HTML templates from the root of fsys, sorted by filename.
// Pass os.DirFS(dir) to load from disk. No caching: every call re-reads
// the directory.
func Load(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrDirNotFound, err)
		}
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".html") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, ErrNoTemplates
	}

	contents := make([]string, len(names))
	for i, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		contents[i] = string(data)
	}

	return contents, nil
}
