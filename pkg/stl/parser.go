package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomorph/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryPrefixSize = binaryHeaderSize + 4
	binaryFacetSize  = 50
)

// builtinReader parses binary and ASCII STL without third-party code
type builtinReader struct{}

func (builtinReader) Name() string { return "builtin" }

// Read reads an STL file and returns its triangles. Binary layout is
// detected by its exact size; everything else is parsed as ASCII.
func (builtinReader) Read(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ParseError{Path: filename, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ParseError{Path: filename, Err: err}
	}

	model, format, err := parseBytes(data)
	if err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}
	return model, nil
}

// parseBytes picks the format and parses data
func parseBytes(data []byte) (*Model, string, error) {
	format, err := detectFormat(data)
	if err != nil {
		return nil, format, err
	}
	if format == "binary" {
		model, err := parseBinary(bytes.NewReader(data))
		return model, format, err
	}
	model, err := parseASCII(bytes.NewReader(data))
	return model, format, err
}

// detectFormat returns "binary" or "ascii". Binary headers are allowed to
// start with "solid", so the size check decides, not the prefix. Data that
// is neither the exact binary size nor starts with "solid" is a truncated
// or padded binary file.
func detectFormat(data []byte) (string, error) {
	if binarySizeMatches(data) {
		return "binary", nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("solid")) {
		return "ascii", nil
	}
	if len(data) < binaryPrefixSize {
		return "binary", fmt.Errorf("%w: file is %d bytes", ErrSizeMismatch, len(data))
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return "binary", fmt.Errorf("%w: %d triangles need %d bytes, file is %d",
		ErrSizeMismatch, count, binaryPrefixSize+binaryFacetSize*int64(count), len(data))
}

// headerName returns the solid name stored in a binary header
func headerName(header []byte) string {
	return strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))
}

func binarySizeMatches(data []byte) bool {
	if len(data) < binaryPrefixSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return int64(len(data)) == binaryPrefixSize+binaryFacetSize*int64(count)
}

// parseASCII parses an ASCII STL file. Every facet must close with exactly
// three vertices.
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var vertices []geometry.Vector3
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 && model.Name == "" {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrMalformed, line)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrMalformed, line, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	if len(vertices) != 0 {
		return nil, fmt.Errorf("%w: %d vertices outside a closed facet", ErrMalformed, len(vertices))
	}
	if model.TriangleCount() == 0 {
		return nil, ErrNoTriangles
	}

	return model, nil
}

// parseVertex parses three coordinates at single precision, the precision
// STL stores, so ASCII and binary encodings of one model agree exactly.
func parseVertex(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return geometry.Vector3{}, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geometry.Vector3{}, fmt.Errorf("non-finite coordinate %q", f)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	// Read 80-byte header
	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = headerName(header)

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}
	if triangleCount == 0 {
		return nil, ErrNoTriangles
	}

	var facet struct {
		Normal    [3]float32
		Vertices  [3][3]float32
		Attribute uint16
	}
	for i := uint32(0); i < triangleCount; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		var v [3]geometry.Vector3
		for j, p := range facet.Vertices {
			v[j] = geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2]))
			if !finite(v[j]) {
				return nil, fmt.Errorf("%w: triangle %d has a non-finite vertex", ErrMalformed, i)
			}
		}
		model.AddTriangle(geometry.NewTriangle(v[0], v[1], v[2]))
	}

	return model, nil
}

func finite(v geometry.Vector3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v.At(i)) || math.IsInf(v.At(i), 0) {
			return false
		}
	}
	return true
}
