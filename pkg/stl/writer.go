package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gomorph/pkg/geometry"
)

// WriteBinary writes the model in binary STL format. Facet normals are
// recomputed from the vertex winding.
func WriteBinary(w io.Writer, model *Model) error {
	var header [binaryHeaderSize]byte
	copy(header[:], model.Name)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return err
	}

	var facet struct {
		Normal    [3]float32
		Vertices  [3][3]float32
		Attribute uint16
	}
	for _, t := range model.Triangles {
		n := t.UnitNormal()
		facet.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		for j, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			facet.Vertices[j] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	name := strings.ReplaceAll(model.Name, "\n", " ")

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range model.Triangles {
		n := t.UnitNormal()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", float32(n.X), float32(n.Y), float32(n.Z))
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", float32(v.X), float32(v.Y), float32(v.Z))
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// SaveFile writes the model to filename, in ASCII when ascii is set and
// binary otherwise
func SaveFile(filename string, model *Model, ascii bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if ascii {
		err = WriteASCII(file, model)
	} else {
		err = WriteBinary(file, model)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
