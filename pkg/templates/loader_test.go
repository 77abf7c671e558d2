package templates

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoad_SortedAndFiltered(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"b.html": &fstest.MapFile{Data: []byte("<p>second</p>")},
		"a.html": &fstest.MapFile{Data: []byte("<p>first</p>")},
		"c.txt":  &fstest.MapFile{Data: []byte("not a template")},
	}

	tmpls, err := Load(fsys)

	require.NoError(t, err)
	require.Equal(t, []string{"<p>first</p>", "<p>second</p>"}, tmpls)
}

func TestLoad_CaseInsensitiveExtension(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"upper.HTML": &fstest.MapFile{Data: []byte("<p>upper</p>")},
	}

	tmpls, err := Load(fsys)

	require.NoError(t, err)
	require.Equal(t, []string{"<p>upper</p>"}, tmpls)
}

func TestLoad_SkipsSubdirectories(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.html":        &fstest.MapFile{Data: []byte("<p>a</p>")},
		"sub/b.html":    &fstest.MapFile{Data: []byte("<p>nested</p>")},
		"sub/deep.html": &fstest.MapFile{Data: []byte("<p>deeper</p>")},
	}

	tmpls, err := Load(fsys)

	require.NoError(t, err)
	require.Equal(t, []string{"<p>a</p>"}, tmpls)
}

func TestLoad_NoTemplates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"readme.txt": &fstest.MapFile{Data: []byte("nothing here")},
	}

	_, err := Load(fsys)

	require.ErrorIs(t, err, ErrNoTemplates)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{})

	require.ErrorIs(t, err, ErrNoTemplates)
}

func TestLoad_MissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Load(os.DirFS(missing))

	require.ErrorIs(t, err, ErrDirNotFound)
}
