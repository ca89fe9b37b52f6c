package stl

import "errors"

var (
	// ErrNoTriangles is returned for files that contain no facets
	ErrNoTriangles = errors.New("no triangles found")
	// ErrSizeMismatch is returned when a binary file's length disagrees
	// with its triangle count
	ErrSizeMismatch = errors.New("binary size does not match triangle count")
	// ErrMalformed is returned for ASCII content that is not a valid facet list
	ErrMalformed = errors.New("malformed facet data")
	// ErrDecimals is returned for a merge precision beyond float64 resolution
	ErrDecimals = errors.New("merge decimals out of range")
)

// ParseError reports a file that could not be interpreted as a triangle mesh
type ParseError struct {
	Path   string
	Format string // "binary", "ascii" or "" when undetermined
	Err    error
}

func (e *ParseError) Error() string {
	msg := "stl: cannot parse " + e.Path
	if e.Format != "" {
		msg += " as " + e.Format
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
