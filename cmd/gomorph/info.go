package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gomorph/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display surface, volume and shape information about an STL file",
	Long: `Show mesh statistics, dimensions, surface area, volume and centroid, Wadell
sphericity and the surface orientation indices of an STL file.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	report, err := analysis.Analyze(loadMesh(filename))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Particle Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", filename)
	printReport(os.Stdout, report)
}

// printReport writes the analysis report in the layout shared by info and
// watch
func printReport(w io.Writer, r *analysis.Report) {
	fmt.Fprintln(w, "Mesh:")
	fmt.Fprintf(w, "  Nodes: %d\n", r.Nodes)
	fmt.Fprintf(w, "  Faces: %d (%d degenerate)\n", r.Surface.Faces, len(r.Surface.Degenerate))
	fmt.Fprintf(w, "  Edges: %d (%d boundary, %d non-manifold)\n", r.Edges.Count, r.Edges.Boundary, r.Edges.NonManifold)
	fmt.Fprintf(w, "  Closed: %t\n\n", r.Closed())

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(r.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(r.BoundingBox.Max))
	fmt.Fprintf(w, "  Size: %s\n", analysis.FormatVector(r.Dimensions))
	fmt.Fprintf(w, "  Diagonal: %s\n\n", analysis.FormatMeasurement(r.BoundingBox.Diagonal(), ""))

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(r.Edges.Min, ""))
	fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(r.Edges.Max, ""))
	fmt.Fprintf(w, "  Average: %s\n\n", analysis.FormatMeasurement(r.Edges.Avg, ""))

	fmt.Fprintln(w, "Surface:")
	fmt.Fprintf(w, "  Area: %s\n\n", analysis.FormatMeasurement(r.Surface.Area, "square units"))

	fmt.Fprintln(w, "Volume:")
	if r.Mass != nil {
		fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(r.Mass.Volume, "cubic units"))
		fmt.Fprintf(w, "  Centroid: %s\n", analysis.FormatVector(r.Mass.Centroid))
		fmt.Fprintf(w, "  Sphericity (Wadell): %.6f\n\n", r.SphericityWadell)
	} else {
		fmt.Fprintf(w, "  Not available: %v\n\n", r.MassErr)
	}

	fmt.Fprintln(w, "Orientation Tensor:")
	if o := r.Orientation; o != nil {
		fmt.Fprintf(w, "  Eigenvalues: %.6f, %.6f, %.6f\n", o.Eigenvalues[0], o.Eigenvalues[1], o.Eigenvalues[2])
		fmt.Fprintf(w, "  Compactness (C): %.6f\n", o.C)
		fmt.Fprintf(w, "  Flakiness (F): %.6f\n", o.F)
		fmt.Fprintf(w, "  Rodness (R): %.6f\n", o.R)
	} else {
		fmt.Fprintf(w, "  Not available: %v\n", r.OrientationErr)
	}
}
