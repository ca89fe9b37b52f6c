// Package stl loads STL (stereolithography) files, binary and ASCII, into
// indexed triangle meshes.
//
// Two interchangeable backends implement Reader: one backed by
// github.com/hschendel/stl and a built-in parser. DefaultReader picks the
// library backend unless the module was built with -tags=builtinstl.
package stl

import (
	"fmt"
	"sync"

	"github.com/philipparndt/gomorph/pkg/mesh"
)

const (
	// DefaultDecimals is the rounding precision used to merge vertices
	DefaultDecimals = 12
	// MaxDecimals is the finest merge precision float64 coordinates support
	MaxDecimals = 15
)

// Reader reads the triangles of an STL file. Implementations report
// malformed input as *ParseError and must reject files without triangles.
type Reader interface {
	Name() string
	Read(filename string) (*Model, error)
}

// Options controls how a file is turned into an indexed mesh
type Options struct {
	// MergeVertices shares nodes between triangles whose corners coincide
	MergeVertices bool
	// Decimals is the rounding precision used when merging; zero selects
	// DefaultDecimals
	Decimals int
	// Reader overrides the backend; nil selects DefaultReader()
	Reader Reader
}

// DefaultOptions returns the options used by Load
func DefaultOptions() Options {
	return Options{
		MergeVertices: true,
		Decimals:      DefaultDecimals,
	}
}

var defaultReader = sync.OnceValue(func() Reader {
	if r, err := newLibraryReader(); err == nil {
		return r
	}
	return builtinReader{}
})

// DefaultReader returns the preferred available backend. Selection runs
// once per process.
func DefaultReader() Reader {
	return defaultReader()
}

// BuiltinReader returns the dependency-free backend
func BuiltinReader() Reader {
	return builtinReader{}
}

// Load reads an STL file into an indexed, 0-based triangle mesh using
// DefaultOptions.
func Load(filename string) (mesh.TriangleMesh, error) {
	return LoadWithOptions(filename, DefaultOptions())
}

// LoadWithOptions reads an STL file into an indexed, 0-based triangle mesh
func LoadWithOptions(filename string, opts Options) (mesh.TriangleMesh, error) {
	reader := opts.Reader
	if reader == nil {
		reader = DefaultReader()
	}

	model, err := reader.Read(filename)
	if err != nil {
		return mesh.TriangleMesh{}, err
	}

	m, err := model.Index(opts.MergeVertices, opts.Decimals)
	if err != nil {
		return mesh.TriangleMesh{}, &ParseError{Path: filename, Err: fmt.Errorf("indexing triangles: %w", err)}
	}
	return m, nil
}
