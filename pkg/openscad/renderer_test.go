package openscad

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "particle.scad"), `use <lib/grain.scad>
// include <ignored.scad>
include <./params.scad>
grain();
`)
	writeFile(t, filepath.Join(dir, "lib", "grain.scad"), "include <../params.scad>\nmodule grain() { sphere(r); }\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "r = 2;\n")

	r := NewRenderer(dir)
	deps, err := r.ResolveDependencies("particle.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "particle.scad"),
		filepath.Join(dir, "lib", "grain.scad"),
		filepath.Join(dir, "params.scad"),
	}
	if len(deps) != len(want) {
		t.Fatalf("expected %v, got %v", want, deps)
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Errorf("dependency %d: expected %s, got %s", i, want[i], deps[i])
		}
	}
}

func TestResolveDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "particle.scad"), "use <missing.scad>\n")

	_, err := NewRenderer(dir).ResolveDependencies("particle.scad")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestRenderWithoutBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	r := NewRenderer(t.TempDir())
	if _, _, err := r.RenderTemp(context.Background(), "particle.scad"); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestIsSource(t *testing.T) {
	if !IsSource("part.scad") || !IsSource("PART.SCAD") {
		t.Error("expected .scad files to be recognized")
	}
	if IsSource("part.stl") {
		t.Error("expected .stl not to be recognized")
	}
}
