//go:build !builtinstl

package stl

import (
	"bytes"
	"fmt"
	"os"

	hstl "github.com/hschendel/stl"

	"github.com/philipparndt/gomorph/pkg/geometry"
)

// libraryReader reads STL files through github.com/hschendel/stl
type libraryReader struct{}

func newLibraryReader() (Reader, error) {
	return libraryReader{}, nil
}

func (libraryReader) Name() string { return "hschendel/stl" }

// Read classifies the file the same way the built-in parser does before
// handing it to the library, so truncated binaries report ErrSizeMismatch
// from both backends.
func (libraryReader) Read(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ParseError{Path: filename, Err: err}
	}

	format, err := detectFormat(data)
	if err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}

	input := data
	if format == "binary" && bytes.HasPrefix(data, []byte("solid")) {
		// The library takes a "solid" prefix for ASCII
		input = bytes.Clone(data)
		copy(input, "     ")
	}

	solid, err := hstl.ReadAll(bytes.NewReader(input))
	if err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	if len(solid.Triangles) == 0 {
		return nil, &ParseError{Path: filename, Format: format, Err: ErrNoTriangles}
	}

	name := solid.Name
	if format == "binary" {
		name = headerName(data[:binaryHeaderSize])
	}
	model := NewModel(name)
	for i, t := range solid.Triangles {
		var v [3]geometry.Vector3
		for j, p := range t.Vertices {
			v[j] = geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2]))
			if !finite(v[j]) {
				return nil, &ParseError{Path: filename, Format: format,
					Err: fmt.Errorf("%w: triangle %d has a non-finite vertex", ErrMalformed, i)}
			}
		}
		model.AddTriangle(geometry.NewTriangle(v[0], v[1], v[2]))
	}
	return model, nil
}
