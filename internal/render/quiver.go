package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"electric-field/internal/field"
)

// Quiver draws a unit arrow at every grid point, pivoted at its middle. Only
// direction is shown; magnitude is discarded.
type Quiver struct {
	Grid field.Grid
	U, V []float64

	Color color.Color
	// Scale is the arrow length as a fraction of the grid spacing.
	Scale float64
}

func NewQuiver(f *field.Field) *Quiver {
	u, v := f.Normalized()
	return &Quiver{Grid: f.Grid, U: u, V: v, Color: color.Black, Scale: 0.8}
}

func (q *Quiver) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	g := q.Grid

	cellW := trX(g.X[1]) - trX(g.X[0])
	cellH := trY(g.Y[1]) - trY(g.Y[0])
	length := vg.Length(q.Scale) * vg.Length(math.Min(float64(cellW), float64(cellH)))
	shaft := draw.LineStyle{Color: q.Color, Width: length / 25}

	for j, y := range g.Y {
		for i, x := range g.X {
			k := g.Index(i, j)
			u, v := q.U[k], q.V[k]
			if math.IsNaN(u) || math.IsNaN(v) {
				continue
			}
			mid := vg.Point{X: trX(x), Y: trY(y)}
			if !c.Contains(mid) {
				continue
			}
			tail, tip := pivot(mid, u, v, length)

			c.StrokeLines(shaft, c.ClipLinesXY([]vg.Point{tail, tip})...)
			if c.Contains(tip) {
				fillHead(c, q.Color, tip, vg.Point{X: tip.X - tail.X, Y: tip.Y - tail.Y}, length*0.3, length*0.2)
			}
		}
	}
}

// pivot centers an arrow of the given length and direction (u, v) on mid.
func pivot(mid vg.Point, u, v float64, length vg.Length) (tail, tip vg.Point) {
	half := vg.Point{X: vg.Length(u) * length / 2, Y: vg.Length(v) * length / 2}
	return vg.Point{X: mid.X - half.X, Y: mid.Y - half.Y}, vg.Point{X: mid.X + half.X, Y: mid.Y + half.Y}
}

func (q *Quiver) DataRange() (xmin, xmax, ymin, ymax float64) {
	return q.Grid.Bounds()
}
