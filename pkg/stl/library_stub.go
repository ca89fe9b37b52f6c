//go:build builtinstl

package stl

import "errors"

// newLibraryReader reports that the library backend was compiled out.
// Build without -tags=builtinstl to enable it.
func newLibraryReader() (Reader, error) {
	return nil, errors.New("stl library reader not available: built with -tags=builtinstl")
}
