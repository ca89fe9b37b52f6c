package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/philipparndt/gomorph/pkg/analysis"
	"github.com/philipparndt/gomorph/pkg/openscad"
	"github.com/philipparndt/gomorph/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-analyze an STL file whenever it changes",
	Long: `Print the info report for an STL file, then again every time the file is
rewritten, until interrupted. For OpenSCAD sources every used or included
file is watched as well.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before re-analyzing")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	files := []string{filename}
	if openscad.IsSource(filename) {
		deps, err := openscad.NewRenderer(filepath.Dir(filename)).ResolveDependencies(filepath.Base(filename))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		files = deps
	}

	absFile, err := filepath.Abs(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	analyzeOnce(filename)
	onChange := func(changed string) {
		if changed != absFile {
			fmt.Printf("\n%s changed\n", changed)
		}
		analyzeOnce(filename)
	}
	if err := fw.Watch(files, onChange); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", filename)
	<-ctx.Done()
}

// analyzeOnce prints the report for filename. Load errors are printed and
// watching continues, since files are often caught half written.
func analyzeOnce(filename string) {
	fmt.Printf("\n[%s] %s\n", time.Now().Format(time.TimeOnly), filename)

	m, err := readMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		return
	}
	report, err := analysis.Analyze(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		return
	}
	printReport(os.Stdout, report)
}
