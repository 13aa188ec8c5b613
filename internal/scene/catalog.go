package scene

import (
	"fmt"
	"math"
	"sort"

	"electric-field/internal/field"
	"electric-field/internal/render"
)

// Dipole places +1 at (0, a) and -1 at (0, -a); a negative a swaps them.
func Dipole(a float64) (Layout, error) {
	if err := nonzero("a", a); err != nil {
		return Layout{}, err
	}
	lim := a + 2
	g, err := field.Square(lim, 60)
	if err != nil {
		return Layout{}, err
	}
	style := render.DefaultStyle(lim)
	style.ColorScale = field.AbsSum

	return Layout{
		Name: "dipole",
		Charges: []field.Charge{
			{X: 0, Y: a, Q: 1},
			{X: 0, Y: -a, Q: -1},
		},
		Grid:  g,
		Style: style,
		File:  "electric_dipole.pdf",
	}, nil
}

// plateCharges is the number of charges per capacitor plate.
const plateCharges = 60

// Capacitor approximates two plates at y = a (negative) and y = -a
// (positive), each a row of unit charges spaced 0.015 apart.
func Capacitor(a float64) (Layout, error) {
	if err := nonzero("a", a); err != nil {
		return Layout{}, err
	}
	lim := a + 2
	g, err := field.Square(lim, 60)
	if err != nil {
		return Layout{}, err
	}

	charges := make([]field.Charge, 0, 2*plateCharges)
	for m := -plateCharges / 2; m < plateCharges/2; m++ {
		charges = append(charges, field.Charge{X: 0.015 * float64(m), Y: a, Q: -1})
	}
	for m := -plateCharges / 2; m < plateCharges/2; m++ {
		charges = append(charges, field.Charge{X: 0.015 * float64(m), Y: -a, Q: 1})
	}

	style := render.DefaultStyle(lim)
	style.ColorScale = field.AbsSum
	return Layout{Name: "capacitor", Charges: charges, Grid: g, Style: style, File: "capacitor.pdf"}, nil
}

const (
	planeCharges = 30
	planeStep    = 0.03
)

// Planes builds two charged lines crossing at the origin: a positive one on
// the x axis and a negative one tilted by theta degrees. Each arm holds 30
// charges spaced 0.03*r apart.
func Planes(r, theta float64) (Layout, error) {
	if err := positive("r", r); err != nil {
		return Layout{}, err
	}
	if !finite(theta) {
		return Layout{}, fmt.Errorf("theta must be finite, got %g", theta)
	}
	lim := planeCharges*planeStep*r + 1
	g, err := field.Square(lim, 100)
	if err != nil {
		return Layout{}, err
	}

	rad := theta * math.Pi / 180
	var a, b, c float64
	charges := make([]field.Charge, 0, 4*planeCharges)
	for l := 1; l <= planeCharges; l++ {
		a += planeStep * r * math.Cos(rad)
		b += planeStep * r * math.Sin(rad)
		c += planeStep * r
		charges = append(charges,
			field.Charge{X: -c, Y: 0, Q: 1},
			field.Charge{X: c, Y: 0, Q: 1},
			field.Charge{X: a, Y: b, Q: -1},
			field.Charge{X: -a, Y: -b, Q: -1},
		)
	}

	style := render.DefaultStyle(lim)
	style.ColorScale = field.AbsSum
	return Layout{Name: "planes", Charges: charges, Grid: g, Style: style, File: "electric_planes.pdf"}, nil
}

// Quadrupole is two antiparallel dipoles at the corners of a 2a square.
func Quadrupole(a float64) (Layout, error) {
	if err := nonzero("a", a); err != nil {
		return Layout{}, err
	}
	lim := a + 5
	g, err := field.Square(lim, 100)
	if err != nil {
		return Layout{}, err
	}
	style := render.DefaultStyle(lim)
	style.Density = 3.5
	style.ColorScale = field.Magnitude

	return Layout{
		Name: "quadrupole",
		Charges: []field.Charge{
			{X: a, Y: a, Q: 1},
			{X: a, Y: -a, Q: -1},
			{X: -a, Y: a, Q: -1},
			{X: -a, Y: -a, Q: 1},
		},
		Grid:  g,
		Style: style,
		File:  "electric_quadrupole.pdf",
	}, nil
}

// Octupole is four alternating dipoles in a row at x = ±a and x = ±3a.
func Octupole(a float64) (Layout, error) {
	if err := nonzero("a", a); err != nil {
		return Layout{}, err
	}
	lim := a + 5
	g, err := field.Square(lim, 100)
	if err != nil {
		return Layout{}, err
	}
	style := render.DefaultStyle(lim)
	style.Density = 3.5
	style.ColorScale = field.Magnitude

	return Layout{
		Name: "octupole",
		Charges: []field.Charge{
			{X: 3 * a, Y: a, Q: -1},
			{X: 3 * a, Y: -a, Q: 1},
			{X: a, Y: a, Q: 1},
			{X: a, Y: -a, Q: -1},
			{X: -a, Y: a, Q: -1},
			{X: -a, Y: -a, Q: 1},
			{X: -3 * a, Y: a, Q: 1},
			{X: -3 * a, Y: -a, Q: -1},
		},
		Grid:  g,
		Style: style,
		File:  "electric_octupole.pdf",
	}, nil
}

// Boxes nests two alternating squares of charges and draws arrows.
func Boxes() (Layout, error) {
	g, err := field.NewGrid(-2, 2, 32, -1.5, 1.5, 24)
	if err != nil {
		return Layout{}, err
	}
	style := render.DefaultStyle(2)
	style.Width, style.Height = 10, 7
	style.YMin, style.YMax = -1.5, 1.5
	style.Kind = render.KindQuiver

	return Layout{
		Name: "boxes",
		Charges: []field.Charge{
			{X: -1, Y: -1, Q: -1},
			{X: -1, Y: 1, Q: 1},
			{X: 1, Y: 1, Q: -1},
			{X: 1, Y: -1, Q: 1},
			{X: -0.5, Y: -0.5, Q: -1},
			{X: -0.5, Y: 0.5, Q: 1},
			{X: 0.5, Y: 0.5, Q: -1},
			{X: 0.5, Y: -0.5, Q: 1},
		},
		Grid:        g,
		Style:       style,
		File:        "boxes.pdf",
		Interactive: true,
	}, nil
}

// Param is a numeric scene parameter with its demo value.
type Param struct {
	Name    string
	Default float64
	Usage   string
}

// Entry describes a named scene for lookup by name.
type Entry struct {
	Name   string
	Short  string
	Params []Param
	Build  func(args map[string]float64) (Layout, error)
}

var catalog = map[string]Entry{
	"dipole": {
		Name:   "dipole",
		Short:  "two opposite charges separated by 2a",
		Params: []Param{{Name: "a", Default: 0.5, Usage: "half the charge separation"}},
		Build:  func(args map[string]float64) (Layout, error) { return Dipole(args["a"]) },
	},
	"capacitor": {
		Name:   "capacitor",
		Short:  "two oppositely charged plates at y = ±a",
		Params: []Param{{Name: "a", Default: 0.5, Usage: "half the plate separation"}},
		Build:  func(args map[string]float64) (Layout, error) { return Capacitor(args["a"]) },
	},
	"planes": {
		Name:  "planes",
		Short: "two intersecting charged lines",
		Params: []Param{
			{Name: "r", Default: 1, Usage: "line length scale"},
			{Name: "theta", Default: 75, Usage: "angle between the lines in degrees"},
		},
		Build: func(args map[string]float64) (Layout, error) { return Planes(args["r"], args["theta"]) },
	},
	"quadrupole": {
		Name:   "quadrupole",
		Short:  "two antiparallel dipoles",
		Params: []Param{{Name: "a", Default: 1, Usage: "half the charge spacing"}},
		Build:  func(args map[string]float64) (Layout, error) { return Quadrupole(args["a"]) },
	},
	"octupole": {
		Name:   "octupole",
		Short:  "four alternating dipoles in a row",
		Params: []Param{{Name: "a", Default: 1, Usage: "half the charge spacing"}},
		Build:  func(args map[string]float64) (Layout, error) { return Octupole(args["a"]) },
	},
	"boxes": {
		Name:  "boxes",
		Short: "two nested squares of alternating charges (arrows)",
		Build: func(map[string]float64) (Layout, error) { return Boxes() },
	},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, bool) {
	e, ok := catalog[name]
	return e, ok
}

// Names lists the catalog in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the demo parameters of e.
func (e Entry) Defaults() map[string]float64 {
	args := make(map[string]float64, len(e.Params))
	for _, p := range e.Params {
		args[p.Name] = p.Default
	}
	return args
}

// DemoNames is the demo sequence, run with default parameters.
var DemoNames = []string{"dipole", "quadrupole", "octupole", "capacitor", "planes"}
