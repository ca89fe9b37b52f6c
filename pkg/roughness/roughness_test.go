package roughness

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFlatGrid(t *testing.T) {
	z := mat.NewDense(3, 4, []float64{
		5, 5, 5, 5,
		5, 5, 5, 5,
		5, 5, 5, 5,
	})

	got, err := Functions(z, 1, 1)
	if err != nil {
		t.Fatalf("Functions failed: %v", err)
	}
	if got.Sq != 0 || got.Sa != 0 || got.Sdq != 0 {
		t.Errorf("expected zero Sq, Sa and Sdq, got %+v", got)
	}
	if !math.IsInf(got.Sku, 1) {
		t.Errorf("expected Sku = +Inf, got %f", got.Sku)
	}
	if !math.IsNaN(got.Ssk) {
		t.Errorf("expected Ssk = NaN, got %f", got.Ssk)
	}
}

func TestHeightStatistics(t *testing.T) {
	// Mean 0, deviations ±1
	z := mat.NewDense(2, 2, []float64{
		1, -1,
		-1, 1,
	})

	sq, err := Sq(z)
	if err != nil {
		t.Fatalf("Sq failed: %v", err)
	}
	if math.Abs(sq-1) > 1e-10 {
		t.Errorf("expected Sq 1, got %f", sq)
	}

	sa, err := Sa(z)
	if err != nil {
		t.Fatalf("Sa failed: %v", err)
	}
	if math.Abs(sa-1) > 1e-10 {
		t.Errorf("expected Sa 1, got %f", sa)
	}

	sku, err := Sku(z)
	if err != nil {
		t.Fatalf("Sku failed: %v", err)
	}
	if math.Abs(sku-1) > 1e-10 {
		t.Errorf("expected Sku 1, got %f", sku)
	}

	ssk, err := Ssk(z)
	if err != nil {
		t.Fatalf("Ssk failed: %v", err)
	}
	if math.Abs(ssk) > 1e-10 {
		t.Errorf("expected Ssk 0, got %f", ssk)
	}
}

func TestSkewness(t *testing.T) {
	// One spike above a flat floor skews positive
	z := mat.NewDense(2, 2, []float64{0, 0, 0, 4})
	ssk, err := Ssk(z)
	if err != nil {
		t.Fatalf("Ssk failed: %v", err)
	}
	// mean 1, deviations -1,-1,-1,3: m2 = 3, m3 = 6
	expected := 6 / math.Pow(3, 1.5)
	if math.Abs(ssk-expected) > 1e-10 {
		t.Errorf("expected Ssk %f, got %f", expected, ssk)
	}
}

func TestSdqPlane(t *testing.T) {
	// z = 2x + 3y sampled with dx = 0.5, dy = 0.25
	dx, dy := 0.5, 0.25
	rows, cols := 4, 5
	z := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z.Set(r, c, 2*float64(c)*dx+3*float64(r)*dy)
		}
	}

	got, err := Sdq(z, dx, dy)
	if err != nil {
		t.Fatalf("Sdq failed: %v", err)
	}

	// rows*(cols-1) x-differences of 2 and (rows-1)*cols y-differences of 3
	sum := float64(rows*(cols-1))*4 + float64((rows-1)*cols)*9
	expected := math.Sqrt(sum / float64((rows-1)*(cols-1)))
	if math.Abs(got-expected) > 1e-10 {
		t.Errorf("expected Sdq %f, got %f", expected, got)
	}
}

func TestSdqInvalid(t *testing.T) {
	z := mat.NewDense(2, 2, []float64{0, 1, 2, 3})
	if _, err := Sdq(z, 0, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for dx = 0, got %v", err)
	}
	if _, err := Sdq(z, 1, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for dy < 0, got %v", err)
	}

	row := mat.NewDense(1, 3, []float64{0, 1, 2})
	if _, err := Sdq(row, 1, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for a single row, got %v", err)
	}
	if _, err := Functions(row, 1, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected Functions to reject a single row, got %v", err)
	}
}

func TestNonFiniteHeights(t *testing.T) {
	z := mat.NewDense(2, 2, []float64{0, math.NaN(), 1, 2})
	if _, err := Sq(z); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReadGrid(t *testing.T) {
	input := `# heights in um
0, 1, 2
3, 4, 5
`
	z, err := ReadGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}
	rows, cols := z.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 grid, got %dx%d", rows, cols)
	}
	if z.At(1, 2) != 5 {
		t.Errorf("expected z[1,2] = 5, got %f", z.At(1, 2))
	}
}

func TestReadGridInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ragged", "0,1,2\n3,4\n"},
		{"not a number", "0,1\nx,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGrid(strings.NewReader(tt.input)); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
