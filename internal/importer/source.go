package importer

import (
	"io"
	"os"
	"strings"
)

// Source is one report document.
type Source struct {
	// Name identifies the document in logs, diagnostics and output file
	// names. For files it is the path.
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource returns a Source reading the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// StringSource returns a Source over in-memory text.
func StringSource(name, text string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

// OpenFiles returns one file-backed Source per path, in order. Files are
// opened lazily by Import.
func OpenFiles(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = FileSource(p)
	}

	return sources
}
