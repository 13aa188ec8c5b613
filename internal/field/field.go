package field

import (
	"fmt"
	"math"
)

// ColorScale selects how the intensity scalar is derived from a field sample.
type ColorScale int

const (
	// AbsSum is log(sqrt(|Ex| + |Ey|)).
	AbsSum ColorScale = iota
	// Magnitude is log(sqrt(Ex^2 + Ey^2)).
	Magnitude
)

func (s ColorScale) String() string {
	switch s {
	case AbsSum:
		return "abs-sum"
	case Magnitude:
		return "magnitude"
	}
	return fmt.Sprintf("ColorScale(%d)", int(s))
}

func ParseColorScale(s string) (ColorScale, error) {
	switch s {
	case "", "abs-sum":
		return AbsSum, nil
	case "magnitude":
		return Magnitude, nil
	}
	return 0, fmt.Errorf("unknown color scale %q", s)
}

// Field holds the superposed field components sampled on a grid.
type Field struct {
	Grid   Grid
	Ex, Ey []float64
}

func newField(g Grid) *Field {
	return &Field{
		Grid: g,
		Ex:   make([]float64, g.Len()),
		Ey:   make([]float64, g.Len()),
	}
}

// Superpose evaluates every charge on every grid point and sums the
// contributions in charge order.
func Superpose(charges []Charge, g Grid) *Field {
	f := newField(g)
	for _, c := range charges {
		f.accumulate(c)
	}
	return f
}

func (f *Field) accumulate(c Charge) {
	nx := f.Grid.NumX()
	for j, y := range f.Grid.Y {
		for i, x := range f.Grid.X {
			ex, ey := Contribution(c, x, y)
			f.Ex[j*nx+i] += ex
			f.Ey[j*nx+i] += ey
		}
	}
}

// Add returns the element-wise sum of f and o, which must share a grid shape.
func (f *Field) Add(o *Field) (*Field, error) {
	if f.Grid.NumX() != o.Grid.NumX() || f.Grid.NumY() != o.Grid.NumY() {
		return nil, fmt.Errorf("grid mismatch: %dx%d vs %dx%d",
			f.Grid.NumX(), f.Grid.NumY(), o.Grid.NumX(), o.Grid.NumY())
	}
	sum := newField(f.Grid)
	for k := range f.Ex {
		sum.Ex[k] = f.Ex[k] + o.Ex[k]
		sum.Ey[k] = f.Ey[k] + o.Ey[k]
	}
	return sum, nil
}

func (f *Field) Value(i, j int) (float64, float64, error) {
	if i < 0 || i >= f.Grid.NumX() {
		return 0, 0, fmt.Errorf("x index out of range, must be between 0 and %d", f.Grid.NumX()-1)
	}
	if j < 0 || j >= f.Grid.NumY() {
		return 0, 0, fmt.Errorf("y index out of range, must be between 0 and %d", f.Grid.NumY()-1)
	}
	k := f.Grid.Index(i, j)
	return f.Ex[k], f.Ey[k], nil
}

// Normalized returns unit direction vectors. Zero or non-finite samples
// come out as NaN.
func (f *Field) Normalized() (u, v []float64) {
	u = make([]float64, len(f.Ex))
	v = make([]float64, len(f.Ey))
	for k := range f.Ex {
		e := math.Sqrt(f.Ex[k]*f.Ex[k] + f.Ey[k]*f.Ey[k])
		u[k] = f.Ex[k] / e
		v[k] = f.Ey[k] / e
	}
	return u, v
}

// Intensity derives the coloring scalar for every sample.
func (f *Field) Intensity(scale ColorScale) []float64 {
	out := make([]float64, len(f.Ex))
	for k := range f.Ex {
		ex, ey := f.Ex[k], f.Ey[k]
		switch scale {
		case Magnitude:
			out[k] = math.Log(math.Sqrt(ex*ex + ey*ey))
		default:
			out[k] = math.Log(math.Sqrt(math.Abs(ex) + math.Abs(ey)))
		}
	}
	return out
}
