package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"electric-field/internal/field"
)

const markerScale = 0.03 // disc radius per unit charge, data units

var (
	positiveColor = color.NRGBA{R: 0, G: 0, B: 255, A: 153}
	negativeColor = color.NRGBA{R: 255, G: 0, B: 0, A: 153}
)

// Markers draws a disc at every charge, blue for positive and red otherwise,
// with a radius proportional to |q|.
type Markers struct {
	Charges []field.Charge
}

func (m *Markers) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, ch := range m.Charges {
		center := vg.Point{X: trX(ch.X), Y: trY(ch.Y)}
		if !c.Contains(center) {
			continue
		}
		r := trX(ch.X+math.Abs(ch.Q)*markerScale) - center.X
		if r <= 0 {
			continue
		}

		clr := negativeColor
		if ch.Q > 0 {
			clr = positiveColor
		}

		var p vg.Path
		p.Move(vg.Point{X: center.X + r, Y: center.Y})
		p.Arc(center, r, 0, 2*math.Pi)
		p.Close()
		c.SetColor(clr)
		c.Fill(p)
	}
}

func (m *Markers) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, ch := range m.Charges {
		xmin, xmax = math.Min(xmin, ch.X), math.Max(xmax, ch.X)
		ymin, ymax = math.Min(ymin, ch.Y), math.Max(ymax, ch.Y)
	}
	return
}
