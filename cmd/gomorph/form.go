package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomorph/pkg/analysis"
	"github.com/philipparndt/gomorph/pkg/form"
	"github.com/philipparndt/gomorph/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	formShort        float64
	formIntermediate float64
	formLong         float64
	formHullVolume   float64
)

var formCmd = &cobra.Command{
	Use:   "form [file]",
	Short: "Compute sphericity, convexity, flatness and elongation indices",
	Long: `Compute published particle form indices.

With an STL file, surface area and volume are integrated from the mesh and
Wadell sphericity is reported; --hull-volume adds convexity. With the three
axis lengths --short, --intermediate and --long (S <= I <= L), Krumbein
sphericity, Zingg, Kong & Fonseca and Potticary et al. parameters are
reported.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)

	formCmd.Flags().Float64VarP(&formShort, "short", "s", 0, "Short axis length S")
	formCmd.Flags().Float64VarP(&formIntermediate, "intermediate", "i", 0, "Intermediate axis length I")
	formCmd.Flags().Float64VarP(&formLong, "long", "l", 0, "Long axis length L")
	formCmd.Flags().Float64Var(&formHullVolume, "hull-volume", 0, "Convex hull volume, enables convexity")

	formCmd.MarkFlagsRequiredTogether("short", "intermediate", "long")
}

func runForm(cmd *cobra.Command, args []string) {
	axes := cmd.Flags().Changed("short")
	if len(args) == 0 && !axes {
		fmt.Fprintln(os.Stderr, "Error: provide an STL file, axis lengths, or both")
		os.Exit(1)
	}

	fmt.Println("Form Parameters")
	fmt.Println("===============")

	if len(args) == 1 {
		printSurfaceForm(args[0], cmd.Flags().Changed("hull-volume"))
	}
	if axes {
		printAxisForm()
	}
}

func printSurfaceForm(filename string, withHull bool) {
	m := loadMesh(filename)

	area, err := analysis.SurfaceArea(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tets, err := mesh.FanTetrahedralize(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	props, err := analysis.VolumeCentroidInertia(tets, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nFile: %s\n", filename)
	fmt.Printf("  Surface Area: %s\n", analysis.FormatMeasurement(area, "square units"))
	fmt.Printf("  Volume: %s\n", analysis.FormatMeasurement(props.Volume, "cubic units"))

	if withHull {
		result, err := form.Functions1(area, props.Volume, formHullVolume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Convexity: %.6f\n", result.Convexity)
		fmt.Printf("  Sphericity (Wadell): %.6f\n", result.SphericityWadell)
		return
	}

	spW, err := form.SphericityWadell(props.Volume, area)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Sphericity (Wadell): %.6f\n", spW)
}

func printAxisForm() {
	result, err := form.Functions2(formShort, formIntermediate, formLong)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nAxes: S=%g I=%g L=%g\n", formShort, formIntermediate, formLong)
	fmt.Printf("  Sphericity (Krumbein): %.6f\n", result.SphericityKrumbein)
	fmt.Printf("  Zingg: S/I=%.6f I/L=%.6f (%s)\n", result.SI, result.IL, result.ZinggClass)
	fmt.Printf("  Kong & Fonseca: flatness=%.6f elongation=%.6f\n", result.KongFonseca.Flatness, result.KongFonseca.Elongation)
	fmt.Printf("  Potticary et al.: flatness=%.6f elongation=%.6f\n", result.Potticary.Flatness, result.Potticary.Elongation)
}
