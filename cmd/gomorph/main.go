package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/gomorph/pkg/mesh"
	"github.com/philipparndt/gomorph/pkg/openscad"
	"github.com/philipparndt/gomorph/pkg/stl"
	"github.com/philipparndt/gomorph/version"
	"github.com/spf13/cobra"
)

var (
	noMerge       bool
	mergeDecimals int
	builtinReader bool
)

var rootCmd = &cobra.Command{
	Use:   "gomorph",
	Short: "Particle morphology metrics for STL meshes",
	Long: `gomorph computes geometric and dimensionless form descriptors of a single
particle from its STL surface: surface area, volume, centroid, inertia and
principal axes, the surface orientation tensor, and published sphericity,
flatness and elongation indices.

Commands taking a mesh file also accept OpenSCAD sources (.scad), which are
rendered to STL with the openscad tool first.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noMerge, "no-merge", false, "Do not merge coincident vertices when loading")
	rootCmd.PersistentFlags().IntVar(&mergeDecimals, "decimals", stl.DefaultDecimals, "Rounding precision used to merge vertices")
	rootCmd.PersistentFlags().BoolVar(&builtinReader, "builtin-reader", false, "Use the built-in STL parser instead of the library backend")
}

// loadOptions returns the ingestion options selected by the global flags
func loadOptions() stl.Options {
	opts := stl.DefaultOptions()
	opts.MergeVertices = !noMerge
	opts.Decimals = mergeDecimals
	if builtinReader {
		opts.Reader = stl.BuiltinReader()
	}
	return opts
}

// readMesh loads an STL file, rendering OpenSCAD sources to STL first
func readMesh(filename string) (mesh.TriangleMesh, error) {
	if !openscad.IsSource(filename) {
		return stl.LoadWithOptions(filename, loadOptions())
	}

	renderer := openscad.NewRenderer(filepath.Dir(filename))
	rendered, cleanup, err := renderer.RenderTemp(context.Background(), filepath.Base(filename))
	if err != nil {
		return mesh.TriangleMesh{}, err
	}
	defer cleanup()
	return stl.LoadWithOptions(rendered, loadOptions())
}

// loadMesh loads a mesh or exits
func loadMesh(filename string) mesh.TriangleMesh {
	m, err := readMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	return m
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
