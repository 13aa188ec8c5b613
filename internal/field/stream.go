package field

import "math"

const (
	// maskCellsPerDensity is the occupancy mask resolution at density 1.
	maskCellsPerDensity = 30
	// maxLineLength bounds a single line, in axes fractions.
	maxLineLength = 4.0
	// stepsPerCell is the number of integration steps per mask cell.
	stepsPerCell = 4
)

type Vec2 struct {
	X, Y float64
}

// Streamline is a field line in data coordinates, oriented along the field.
type Streamline []Vec2

// Arrow returns the position and direction for a head drawn halfway along the
// line. ok is false for lines with fewer than two points.
func (s Streamline) Arrow() (at, dir Vec2, ok bool) {
	if len(s) < 2 {
		return Vec2{}, Vec2{}, false
	}
	m := len(s) / 2
	if m == len(s)-1 {
		m--
	}
	return s[m], Vec2{X: s[m+1].X - s[m].X, Y: s[m+1].Y - s[m].Y}, true
}

// StreamOptions controls streamline placement.
type StreamOptions struct {
	// Density scales the spacing of lines; 1 gives a 30x30 occupancy mask.
	Density float64
	// MinLength discards lines shorter than this fraction of the axes.
	MinLength float64
}

func DefaultStreamOptions() StreamOptions {
	return StreamOptions{Density: 1, MinLength: 0.1}
}

// Streamlines places evenly spaced field lines over the grid. Lines are seeded
// from the boundary inward and integrated in both directions along the
// normalized field; each line claims the mask cells it crosses and stops when
// it reaches a claimed cell, the domain edge, or a non-finite sample.
func Streamlines(f *Field, opts StreamOptions) []Streamline {
	if opts.Density <= 0 {
		opts.Density = 1
	}
	n := int(maskCellsPerDensity * opts.Density)
	if n < 1 {
		n = 1
	}

	t := newTracer(f, n)
	var lines []Streamline
	for _, cell := range spiral(n, n) {
		if t.mask[cell[1]*n+cell[0]] {
			continue
		}
		sx := (float64(cell[0]) + 0.5) / float64(n)
		sy := (float64(cell[1]) + 0.5) / float64(n)

		t.claimed = t.claimed[:0]
		t.claim(cell[0], cell[1])

		back, lb := t.integrate(sx, sy, -1)
		fwd, lf := t.integrate(sx, sy, 1)
		if lb+lf < opts.MinLength {
			t.release()
			continue
		}

		line := make(Streamline, 0, len(back)+len(fwd)+1)
		for k := len(back) - 1; k >= 0; k-- {
			line = append(line, t.toData(back[k]))
		}
		line = append(line, t.toData(Vec2{X: sx, Y: sy}))
		for _, p := range fwd {
			line = append(line, t.toData(p))
		}
		lines = append(lines, line)
	}
	return lines
}

// tracer integrates in axes coordinates, where both axes span [0, 1].
type tracer struct {
	f    *Field
	u, v []float64

	xmin, ymin   float64
	xspan, yspan float64
	n            int
	ds           float64
	mask         []bool
	claimed      [][2]int
}

func newTracer(f *Field, n int) *tracer {
	u, v := f.Normalized()
	xmin, xmax, ymin, ymax := f.Grid.Bounds()
	return &tracer{
		f:     f,
		u:     u,
		v:     v,
		xmin:  xmin,
		ymin:  ymin,
		xspan: xmax - xmin,
		yspan: ymax - ymin,
		n:     n,
		ds:    1 / float64(n*stepsPerCell),
		mask:  make([]bool, n*n),
	}
}

func (t *tracer) toData(p Vec2) Vec2 {
	return Vec2{X: t.xmin + p.X*t.xspan, Y: t.ymin + p.Y*t.yspan}
}

func (t *tracer) cell(p Vec2) (int, int) {
	cx := int(p.X * float64(t.n))
	cy := int(p.Y * float64(t.n))
	return min(cx, t.n-1), min(cy, t.n-1)
}

func (t *tracer) claim(cx, cy int) {
	t.mask[cy*t.n+cx] = true
	t.claimed = append(t.claimed, [2]int{cx, cy})
}

func (t *tracer) release() {
	for _, c := range t.claimed {
		t.mask[c[1]*t.n+c[0]] = false
	}
	t.claimed = t.claimed[:0]
}

// velocity is the unit direction of the field at p, in axes coordinates.
func (t *tracer) velocity(p Vec2) (Vec2, bool) {
	gx := p.X * float64(t.f.Grid.NumX()-1)
	gy := p.Y * float64(t.f.Grid.NumY()-1)
	u := interpolate(t.u, t.f.Grid.NumX(), t.f.Grid.NumY(), gx, gy) / t.xspan
	v := interpolate(t.v, t.f.Grid.NumX(), t.f.Grid.NumY(), gx, gy) / t.yspan
	s := math.Hypot(u, v)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Vec2{}, false
	}
	return Vec2{X: u / s, Y: v / s}, true
}

func inside(p Vec2) bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// integrate walks from (sx, sy) with midpoint steps. It returns the points
// visited (excluding the start) and the arc length covered.
func (t *tracer) integrate(sx, sy, dir float64) ([]Vec2, float64) {
	p := Vec2{X: sx, Y: sy}
	cx, cy := t.cell(p)

	var pts []Vec2
	length := 0.0
	for length < maxLineLength {
		v1, ok := t.velocity(p)
		if !ok {
			break
		}
		mid := Vec2{X: p.X + 0.5*t.ds*dir*v1.X, Y: p.Y + 0.5*t.ds*dir*v1.Y}
		if !inside(mid) {
			break
		}
		v2, ok := t.velocity(mid)
		if !ok || v1.X*v2.X+v1.Y*v2.Y < 0 {
			// reversal means the step jumped across a charge
			break
		}
		next := Vec2{X: p.X + t.ds*dir*v2.X, Y: p.Y + t.ds*dir*v2.Y}
		if !inside(next) {
			break
		}

		nx, ny := t.cell(next)
		if nx != cx || ny != cy {
			if t.mask[ny*t.n+nx] {
				break
			}
			t.claim(nx, ny)
			cx, cy = nx, ny
		}

		pts = append(pts, next)
		length += t.ds
		p = next
	}
	return pts, length
}

// spiral lists mask cells from the boundary inward, clockwise.
func spiral(nx, ny int) [][2]int {
	out := make([][2]int, 0, nx*ny)
	xfirst, yfirst := 0, 1
	xlast, ylast := nx-1, ny-1
	x, y := 0, 0
	dir := "right"
	for i := 0; i < nx*ny; i++ {
		out = append(out, [2]int{x, y})
		switch dir {
		case "right":
			x++
			if x >= xlast {
				xlast--
				dir = "up"
			}
		case "up":
			y++
			if y >= ylast {
				ylast--
				dir = "left"
			}
		case "left":
			x--
			if x <= xfirst {
				xfirst++
				dir = "down"
			}
		case "down":
			y--
			if y <= yfirst {
				yfirst++
				dir = "right"
			}
		}
	}
	return out
}

// interpolate samples a row-major nx x ny array at fractional grid
// coordinates (gx, gy) with bilinear weights.
func interpolate(vals []float64, nx, ny int, gx, gy float64) float64 {
	i := int(gx)
	j := int(gy)
	i = max(0, min(i, nx-2))
	j = max(0, min(j, ny-2))
	fx := gx - float64(i)
	fy := gy - float64(j)

	a := vals[j*nx+i]*(1-fx) + vals[j*nx+i+1]*fx
	b := vals[(j+1)*nx+i]*(1-fx) + vals[(j+1)*nx+i+1]*fx
	return a*(1-fy) + b*fy
}

// Sample interpolates a per-sample array of g at data point (x, y).
func Sample(g Grid, vals []float64, x, y float64) float64 {
	xmin, xmax, ymin, ymax := g.Bounds()
	gx := (x - xmin) / (xmax - xmin) * float64(g.NumX()-1)
	gy := (y - ymin) / (ymax - ymin) * float64(g.NumY()-1)
	return interpolate(vals, g.NumX(), g.NumY(), gx, gy)
}
