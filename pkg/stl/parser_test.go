package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/philipparndt/gomorph/pkg/geometry"
)

const asciiSquare = `solid square
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid square
`

func squareModel() *Model {
	model := NewModel("square")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0),
	))
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(0, 1, 0),
	))
	return model
}

func TestParseASCII(t *testing.T) {
	model, format, err := parseBytes([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("parseBytes failed: %v", err)
	}
	if format != "ascii" {
		t.Errorf("expected ascii format, got %q", format)
	}
	if model.Name != "square" {
		t.Errorf("expected name %q, got %q", "square", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", model.TriangleCount())
	}
	if model.Triangles[1].V3 != geometry.NewVector3(0, 1, 0) {
		t.Errorf("unexpected vertex %v", model.Triangles[1].V3)
	}
}

func TestParseASCIIMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad number", strings.Replace(asciiSquare, "vertex 1 0 0", "vertex 1 abc 0", 1)},
		{"missing coordinate", strings.Replace(asciiSquare, "vertex 1 0 0", "vertex 1 0", 1)},
		{"two vertices", strings.Replace(asciiSquare, "      vertex 1 0 0\n", "", 1)},
		{"non-finite", strings.Replace(asciiSquare, "vertex 1 0 0", "vertex NaN 0 0", 1)},
		{"unterminated facet", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, format, err := parseBytes([]byte(tt.text))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if format != "ascii" {
				t.Errorf("expected ascii format, got %q", format)
			}
		})
	}
}

func TestParseASCIINoTriangles(t *testing.T) {
	_, _, err := parseBytes([]byte("solid empty\nendsolid empty\n"))
	if !errors.Is(err, ErrNoTriangles) {
		t.Fatalf("expected ErrNoTriangles, got %v", err)
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, squareModel()); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	if buf.Len() != 84+2*50 {
		t.Fatalf("expected %d bytes, got %d", 84+2*50, buf.Len())
	}

	model, format, err := parseBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("parseBytes failed: %v", err)
	}
	if format != "binary" {
		t.Errorf("expected binary format, got %q", format)
	}
	if model.Name != "square" {
		t.Errorf("expected name %q, got %q", "square", model.Name)
	}
	for i, tri := range squareModel().Triangles {
		if model.Triangles[i] != tri {
			t.Errorf("triangle %d: expected %v, got %v", i, tri, model.Triangles[i])
		}
	}
}

func TestParseBinaryHeaderStartingWithSolid(t *testing.T) {
	model := squareModel()
	model.Name = "solid but binary"

	var buf bytes.Buffer
	if err := WriteBinary(&buf, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	parsed, format, err := parseBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("parseBytes failed: %v", err)
	}
	if format != "binary" || parsed.TriangleCount() != 2 {
		t.Errorf("expected 2 binary triangles, got %d as %q", parsed.TriangleCount(), format)
	}
}

func TestParseBinarySizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, squareModel()); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-10]
	_, format, err := parseBytes(truncated)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if format != "binary" {
		t.Errorf("expected binary format, got %q", format)
	}

	_, _, err = parseBytes([]byte{1, 2, 3})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch for tiny file, got %v", err)
	}
}

func TestParseBinaryZeroTriangles(t *testing.T) {
	data := make([]byte, 84)
	binary.LittleEndian.PutUint32(data[80:], 0)

	_, _, err := parseBytes(data)
	if !errors.Is(err, ErrNoTriangles) {
		t.Fatalf("expected ErrNoTriangles, got %v", err)
	}
}

func TestASCIIAndBinaryEncodingsAgree(t *testing.T) {
	model := squareModel()
	model.Triangles[0].V2 = geometry.NewVector3(0.1, 1.0/3.0, -2.5e-7)

	var ascii, bin bytes.Buffer
	if err := WriteASCII(&ascii, model); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	if err := WriteBinary(&bin, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	fromASCII, _, err := parseBytes(ascii.Bytes())
	if err != nil {
		t.Fatalf("ascii parse failed: %v", err)
	}
	fromBinary, _, err := parseBytes(bin.Bytes())
	if err != nil {
		t.Fatalf("binary parse failed: %v", err)
	}

	for i := range fromBinary.Triangles {
		if fromASCII.Triangles[i] != fromBinary.Triangles[i] {
			t.Errorf("triangle %d differs: ascii %v, binary %v", i, fromASCII.Triangles[i], fromBinary.Triangles[i])
		}
	}
}
