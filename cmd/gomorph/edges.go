package main

import (
	"fmt"

	"github.com/philipparndt/gomorph/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesBoundary  bool
	edgesMinLength float64
	edgesMaxLength float64
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in an STL file",
	Long: `Find and measure the edges of the merged mesh: longest, shortest, edges
within a length range, or boundary edges that keep a surface from being
closed.`,
	Args: cobra.ExactArgs(1),
	Run:  runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().BoolVarP(&edgesBoundary, "boundary", "b", false, "Show edges used by a single face")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runEdges(cmd *cobra.Command, args []string) {
	all := analysis.Edges(loadMesh(args[0]))
	stats := analysis.SummarizeEdges(all)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case edgesLongest:
		edges = analysis.FindLongestEdges(all, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgesShortest:
		edges = analysis.FindShortestEdges(all, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	case edgesBoundary:
		for _, e := range all {
			if e.Faces == 1 {
				edges = append(edges, e)
			}
		}
		title = fmt.Sprintf("Boundary Edges (found %d)", len(edges))
	case edgesMaxLength > 0:
		edges = analysis.FindEdgesByLength(all, edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
	default:
		edges = all
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(all)), len(all))
	}
	if edgesCount >= 0 && len(edges) > edgesCount {
		edges = edges[:edgesCount]
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in model: %d\n", stats.Count)
	fmt.Printf("Boundary edges: %d\n", stats.Boundary)
	fmt.Printf("Non-manifold edges: %d\n", stats.NonManifold)
	fmt.Printf("Min edge length: %.6f units\n", stats.Min)
	fmt.Printf("Max edge length: %.6f units\n", stats.Max)
	fmt.Printf("Avg edge length: %.6f units\n\n", stats.Avg)

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	fmt.Printf("%-6s %-13s %-35s %-35s %-15s %s\n", "Index", "Nodes", "Start", "End", "Length", "Faces")
	fmt.Println("-------------------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Printf("%-6d %-13s %-35s %-35s %-15.6f %d\n",
			i+1,
			fmt.Sprintf("%d-%d", edge.From, edge.To),
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			edge.Faces)
	}
}
