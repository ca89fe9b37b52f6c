// Package shapes builds closed, outward-wound reference meshes with known
// closed-form geometry: boxes, platonic solids and sphere approximations.
package shapes

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomorph/pkg/geometry"
	"github.com/philipparndt/gomorph/pkg/mesh"
)

// Box returns an axis-aligned box with its minimum corner at the origin
func Box(x, y, z float64) mesh.TriangleMesh {
	nodes := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: x, Y: 0, Z: 0}, {X: x, Y: y, Z: 0}, {X: 0, Y: y, Z: 0},
		{X: 0, Y: 0, Z: z}, {X: x, Y: 0, Z: z}, {X: x, Y: y, Z: z}, {X: 0, Y: y, Z: z},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // z = 0
		{4, 5, 6}, {4, 6, 7}, // z = z
		{0, 1, 5}, {0, 5, 4}, // y = 0
		{1, 2, 6}, {1, 6, 5}, // x = x
		{2, 3, 7}, {2, 7, 6}, // y = y
		{3, 0, 4}, {3, 4, 7}, // x = 0
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: faces}
}

// Cube returns an axis-aligned cube with its minimum corner at the origin
func Cube(side float64) mesh.TriangleMesh {
	return Box(side, side, side)
}

// Tetrahedron returns a regular tetrahedron with the given edge length
// resting on the XY plane
func Tetrahedron(edge float64) mesh.TriangleMesh {
	nodes := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: edge, Y: 0, Z: 0},
		{X: edge / 2, Y: edge * math.Sqrt(3) / 2, Z: 0},
		{X: edge / 2, Y: edge * math.Sqrt(3) / 6, Z: edge * math.Sqrt(2.0/3.0)},
	}
	faces := [][3]int{
		{0, 2, 1},
		{0, 1, 3},
		{1, 2, 3},
		{2, 0, 3},
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: faces}
}

// Icosahedron returns a regular icosahedron inscribed in a sphere of the
// given radius centered at the origin
func Icosahedron(radius float64) mesh.TriangleMesh {
	phi := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	nodes := make([]geometry.Vector3, len(raw))
	for i, r := range raw {
		nodes[i] = geometry.NewVector3(r[0], r[1], r[2]).Normalize().Mul(radius)
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: faces}
}

// Icosphere subdivides an icosahedron the given number of times, pushing
// new vertices onto the sphere. Each level quadruples the face count.
func Icosphere(radius float64, subdivisions int) mesh.TriangleMesh {
	m := Icosahedron(1)
	for level := 0; level < subdivisions; level++ {
		m = subdivide(m)
	}
	for i := range m.Nodes {
		m.Nodes[i] = m.Nodes[i].Normalize().Mul(radius)
	}
	return m
}

func subdivide(m mesh.TriangleMesh) mesh.TriangleMesh {
	nodes := append([]geometry.Vector3(nil), m.Nodes...)
	midpoints := make(map[[2]int]int)

	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := nodes[a].Add(nodes[b]).Mul(0.5).Normalize()
		nodes = append(nodes, mid)
		midpoints[key] = len(nodes) - 1
		return len(nodes) - 1
	}

	faces := make([][3]int, 0, 4*len(m.Faces))
	for _, f := range m.Faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		faces = append(faces,
			[3]int{f[0], ab, ca},
			[3]int{f[1], bc, ab},
			[3]int{f[2], ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: faces}
}

// UVSphere returns a latitude/longitude sphere with the poles on the Y axis
func UVSphere(radius float64, stacks, slices int) mesh.TriangleMesh {
	nodes := make([]geometry.Vector3, 0, (stacks-1)*slices+2)
	nodes = append(nodes, geometry.NewVector3(0, radius, 0))
	for i := 1; i < stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		y := math.Cos(theta)
		r := math.Sin(theta)
		for j := 0; j < slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			nodes = append(nodes, geometry.NewVector3(r*math.Cos(phi), y, r*math.Sin(phi)).Mul(radius))
		}
	}
	nodes = append(nodes, geometry.NewVector3(0, -radius, 0))
	bottom := len(nodes) - 1

	// One node per pole; the seam column wraps around to j = 0
	idx := func(i, j int) int {
		switch i {
		case 0:
			return 0
		case stacks:
			return bottom
		}
		return 1 + (i-1)*slices + j%slices
	}

	var faces [][3]int
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a, b := idx(i, j), idx(i, j+1)
			c, d := idx(i+1, j), idx(i+1, j+1)
			if i != 0 {
				faces = append(faces, [3]int{a, b, c})
			}
			if i != stacks-1 {
				faces = append(faces, [3]int{b, d, c})
			}
		}
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: faces}
}

// Ellipsoid scales a UV sphere by the three semi-axes
func Ellipsoid(rx, ry, rz float64, stacks, slices int) mesh.TriangleMesh {
	m := UVSphere(1, stacks, slices)
	for i, n := range m.Nodes {
		m.Nodes[i] = geometry.NewVector3(n.X*rx, n.Y*ry, n.Z*rz)
	}
	return m
}

// Translate returns a copy of m with every node moved by offset
func Translate(m mesh.TriangleMesh, offset geometry.Vector3) mesh.TriangleMesh {
	nodes := make([]geometry.Vector3, len(m.Nodes))
	for i, n := range m.Nodes {
		nodes[i] = n.Add(offset)
	}
	return mesh.TriangleMesh{Nodes: nodes, Faces: m.Faces}
}

// Names lists the shapes accepted by ByName
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builders = map[string]func(size float64) mesh.TriangleMesh{
	"cube":        Cube,
	"tetrahedron": Tetrahedron,
	"icosahedron": Icosahedron,
	"icosphere":   func(size float64) mesh.TriangleMesh { return Icosphere(size, 3) },
	"uvsphere":    func(size float64) mesh.TriangleMesh { return UVSphere(size, 24, 48) },
}

// ByName builds the named reference shape with the given characteristic
// size (edge length or radius)
func ByName(name string, size float64) (mesh.TriangleMesh, error) {
	build, ok := builders[name]
	if !ok {
		return mesh.TriangleMesh{}, fmt.Errorf("unknown shape %q (available: %v)", name, Names())
	}
	return build(size), nil
}
