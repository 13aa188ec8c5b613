package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a rectangular mesh of sample points. Sample (i, j) sits at
// (X[i], Y[j]); per-sample arrays are stored row by row along Y.
type Grid struct {
	X, Y []float64
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func NewGrid(xlo, xhi float64, nx int, ylo, yhi float64, ny int) (Grid, error) {
	if nx < 2 || ny < 2 {
		return Grid{}, fmt.Errorf("grid needs at least 2x2 points, got %dx%d", nx, ny)
	}
	if !(xlo < xhi) || !(ylo < yhi) {
		return Grid{}, fmt.Errorf("empty grid extent [%g, %g]x[%g, %g]", xlo, xhi, ylo, yhi)
	}
	return Grid{X: Linspace(xlo, xhi, nx), Y: Linspace(ylo, yhi, ny)}, nil
}

// Square builds an n x n grid over [-lim, lim]^2.
func Square(lim float64, n int) (Grid, error) {
	return NewGrid(-lim, lim, n, -lim, lim, n)
}

func (g Grid) NumX() int { return len(g.X) }
func (g Grid) NumY() int { return len(g.Y) }
func (g Grid) Len() int  { return len(g.X) * len(g.Y) }

func (g Grid) Index(i, j int) int { return j*len(g.X) + i }

// Bounds returns the extent covered by the grid.
func (g Grid) Bounds() (xmin, xmax, ymin, ymax float64) {
	return g.X[0], g.X[len(g.X)-1], g.Y[0], g.Y[len(g.Y)-1]
}

// Point returns the coordinates of sample (i, j).
func (g Grid) Point(i, j int) (float64, float64) {
	return g.X[i], g.Y[j]
}
