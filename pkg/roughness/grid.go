package roughness

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadGrid reads a height grid from comma-separated text, one grid row per
// line. Lines starting with '#' are ignored and every row must have the
// same number of columns.
func ReadGrid(r io.Reader) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var data []float64
	rows, cols := 0, 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if rows == 0 {
			cols = len(record)
		}
		for c, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %v", ErrInvalidInput, rows+1, c+1, err)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	return mat.NewDense(rows, cols, data), nil
}

// ReadGridFile reads a height grid from a CSV file
func ReadGridFile(filename string) (*mat.Dense, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	grid, err := ReadGrid(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return grid, nil
}
