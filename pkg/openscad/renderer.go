// Package openscad turns parametric OpenSCAD particle models into STL files
// by running the openscad command line tool.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotInstalled is returned when the openscad binary is not in PATH
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Binary is the name of the OpenSCAD executable
const Binary = "openscad"

var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// IsSource reports whether filename looks like an OpenSCAD source file
func IsSource(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".scad")
}

// Renderer renders OpenSCAD files relative to a working directory
type Renderer struct {
	workDir string
}

// NewRenderer creates a new OpenSCAD renderer. Relative paths passed to
// its methods are resolved against workDir.
func NewRenderer(workDir string) *Renderer {
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	return &Renderer{
		workDir: workDir,
	}
}

func (r *Renderer) abs(scadFile string) string {
	if filepath.IsAbs(scadFile) {
		return scadFile
	}
	return filepath.Join(r.workDir, scadFile)
}

// RenderToSTL renders scadFile into outputFile. The output of a failed run
// is included in the error.
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if _, err := exec.LookPath(Binary); err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, Binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if output.Len() > 0 {
			return fmt.Errorf("failed to render %s: %w\n%s", scadFile, err, strings.TrimSpace(output.String()))
		}
		return fmt.Errorf("failed to render %s: %w", scadFile, err)
	}
	return nil
}

// RenderTemp renders scadFile into a new temporary STL file and returns
// its path together with a cleanup function removing it
func (r *Renderer) RenderTemp(ctx context.Context, scadFile string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "gomorph-scad-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	name := strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile)) + ".stl"
	output := filepath.Join(dir, name)
	if err := r.RenderToSTL(ctx, scadFile, output); err != nil {
		cleanup()
		return "", nil, err
	}
	return output, cleanup, nil
}

// ResolveDependencies returns scadFile and every file it pulls in through
// use or include statements, recursively, as absolute paths
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	var resolve func(file string) error
	resolve = func(file string) error {
		if visited[file] {
			return nil
		}
		visited[file] = true
		deps = append(deps, file)

		direct, err := r.parseDependencies(file)
		if err != nil {
			return err
		}
		for _, dep := range direct {
			if err := resolve(dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := resolve(filepath.Clean(r.abs(scadFile))); err != nil {
		return nil, err
	}
	return deps, nil
}

// parseDependencies returns the files named by use/include statements of a
// single OpenSCAD file
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if matches := dependencyPattern.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file,
// falling back to the working directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if filepath.IsAbs(depPath) {
		return filepath.Clean(depPath)
	}

	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return local
	}
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Join(r.workDir, depPath)
}
