package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"electric-field/internal/field"
)

// colorLevels is the number of distinct colors a streamline can be split into.
const colorLevels = 64

// Streams draws field lines colored by an intensity scalar through a colormap,
// with one arrow head per line.
type Streams struct {
	Lines     []field.Streamline
	Grid      field.Grid
	Intensity []float64
	Colormap  palette.ColorMap
	LineWidth vg.Length
	ArrowSize float64
}

// NewStreams places streamlines on f and prepares their coloring.
func NewStreams(f *field.Field, s Style) (*Streams, error) {
	cmap, err := Colormap(s.Colormap)
	if err != nil {
		return nil, err
	}
	intensity := f.Intensity(s.ColorScale)
	lo, hi := finiteRange(intensity)
	cmap.SetMin(lo)
	cmap.SetMax(hi)

	lines := field.Streamlines(f, field.StreamOptions{Density: s.Density, MinLength: s.MinLength})
	return &Streams{
		Lines:     lines,
		Grid:      f.Grid,
		Intensity: intensity,
		Colormap:  cmap,
		LineWidth: vg.Length(s.LineWidth),
		ArrowSize: s.ArrowSize,
	}, nil
}

func finiteRange(vals []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo, lo + 1
	}
	return lo, hi
}

// level quantizes the intensity at (x, y) into one of colorLevels bins.
func (s *Streams) level(x, y float64) int {
	v := field.Sample(s.Grid, s.Intensity, x, y)
	lo, hi := s.Colormap.Min(), s.Colormap.Max()
	if math.IsNaN(v) {
		v = lo
	}
	k := int((v - lo) / (hi - lo) * colorLevels)
	return max(0, min(k, colorLevels-1))
}

func (s *Streams) color(level int) color.Color {
	lo, hi := s.Colormap.Min(), s.Colormap.Max()
	v := lo + (float64(level)+0.5)/colorLevels*(hi-lo)
	c, err := s.Colormap.At(v)
	if err != nil {
		return color.Black
	}
	return c
}

func (s *Streams) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.LineStyle{Width: s.LineWidth}

	for _, line := range s.Lines {
		// split into runs of equal color
		run := []vg.Point{{X: trX(line[0].X), Y: trY(line[0].Y)}}
		cur := s.level(line[0].X, line[0].Y)
		for _, p := range line[1:] {
			pt := vg.Point{X: trX(p.X), Y: trY(p.Y)}
			run = append(run, pt)
			if lvl := s.level(p.X, p.Y); lvl != cur {
				sty.Color = s.color(cur)
				c.StrokeLines(sty, c.ClipLinesXY(run)...)
				run = []vg.Point{pt}
				cur = lvl
			}
		}
		if len(run) > 1 {
			sty.Color = s.color(cur)
			c.StrokeLines(sty, c.ClipLinesXY(run)...)
		}

		at, dir, ok := line.Arrow()
		if !ok {
			continue
		}
		tip := vg.Point{X: trX(at.X), Y: trY(at.Y)}
		d := vg.Point{X: trX(at.X+dir.X) - tip.X, Y: trY(at.Y+dir.Y) - tip.Y}
		size := vg.Length(s.ArrowSize) * 4 * s.LineWidth
		if c.Contains(tip) {
			fillHead(c, s.color(s.level(at.X, at.Y)), tip, d, size, size*0.6)
		}
	}
}

func (s *Streams) DataRange() (xmin, xmax, ymin, ymax float64) {
	return s.Grid.Bounds()
}

// fillHead draws a triangular arrow head with its tip at tip, pointing along d.
func fillHead(c draw.Canvas, clr color.Color, tip, d vg.Point, length, width vg.Length) {
	n := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
	if n == 0 || math.IsNaN(float64(n)) {
		return
	}
	ux, uy := d.X/n, d.Y/n
	base := vg.Point{X: tip.X - ux*length, Y: tip.Y - uy*length}
	half := width / 2
	c.FillPolygon(clr, []vg.Point{
		tip,
		{X: base.X - uy*half, Y: base.Y + ux*half},
		{X: base.X + uy*half, Y: base.Y - ux*half},
	})
}
