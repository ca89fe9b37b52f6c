//go:build builtinstl

package stl

import "testing"

func TestNewLibraryReaderReturnsError(t *testing.T) {
	r, err := newLibraryReader()
	if err == nil {
		t.Fatal("newLibraryReader() error = nil, want non-nil error when builtinstl tag is set")
	}
	if r != nil {
		t.Fatal("newLibraryReader() returned non-nil reader, want nil when builtinstl tag is set")
	}

	if name := DefaultReader().Name(); name != "builtin" {
		t.Errorf("DefaultReader().Name() = %q, want %q", name, "builtin")
	}
}
