package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"electric-field/internal/field"
	"electric-field/internal/render"
)

// LayoutFile describes a custom charge layout in YAML.
//
//	name: ring
//	file: ring.pdf
//	charges:
//	  - {x: 1, y: 0, q: 1}
//	  - {x: -1, y: 0, q: -1}
//	grid: {xmin: -3, xmax: 3, nx: 80, ymin: -3, ymax: 3, ny: 80}
//	style: {kind: stream, colormap: inferno, color_scale: magnitude, density: 2}
type LayoutFile struct {
	Name        string       `yaml:"name"`
	File        string       `yaml:"file"`
	Interactive bool         `yaml:"interactive"`
	Charges     []ChargeSpec `yaml:"charges"`
	Grid        GridSpec     `yaml:"grid"`
	Style       StyleSpec    `yaml:"style"`
}

type ChargeSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Q float64 `yaml:"q"`
}

type GridSpec struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	NX   int     `yaml:"nx"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
	NY   int     `yaml:"ny"`
}

// StyleSpec overrides the default style; zero values keep the defaults.
// Axis limits default to the grid extent.
type StyleSpec struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	XLim       []float64 `yaml:"xlim"`
	YLim       []float64 `yaml:"ylim"`
	Kind       string    `yaml:"kind"`
	Colormap   string    `yaml:"colormap"`
	ColorScale string    `yaml:"color_scale"`
	Density    float64   `yaml:"density"`
	MinLength  float64   `yaml:"min_length"`
	LineWidth  float64   `yaml:"line_width"`
}

// LoadLayout decodes a YAML layout and turns it into a validated Layout.
func LoadLayout(r io.Reader) (Layout, error) {
	var lf LayoutFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return lf.Layout()
}

func LoadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, err
	}
	defer f.Close()
	return LoadLayout(f)
}

func (lf LayoutFile) Layout() (Layout, error) {
	g, err := field.NewGrid(lf.Grid.XMin, lf.Grid.XMax, lf.Grid.NX, lf.Grid.YMin, lf.Grid.YMax, lf.Grid.NY)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", lf.Name, err)
	}

	style := render.DefaultStyle(1)
	style.XMin, style.XMax, style.YMin, style.YMax = g.Bounds()
	if err := lf.Style.apply(&style); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", lf.Name, err)
	}

	charges := make([]field.Charge, len(lf.Charges))
	for i, c := range lf.Charges {
		charges[i] = field.Charge{X: c.X, Y: c.Y, Q: c.Q}
	}

	file := lf.File
	if file == "" {
		file = lf.Name + ".pdf"
	}
	l := Layout{
		Name:        lf.Name,
		Charges:     charges,
		Grid:        g,
		Style:       style,
		File:        file,
		Interactive: lf.Interactive,
	}
	return l, l.Validate()
}

func (s StyleSpec) apply(style *render.Style) error {
	if s.Width > 0 {
		style.Width = s.Width
	}
	if s.Height > 0 {
		style.Height = s.Height
	}
	if s.XLim != nil {
		if len(s.XLim) != 2 {
			return fmt.Errorf("xlim wants [min, max], got %v", s.XLim)
		}
		style.XMin, style.XMax = s.XLim[0], s.XLim[1]
	}
	if s.YLim != nil {
		if len(s.YLim) != 2 {
			return fmt.Errorf("ylim wants [min, max], got %v", s.YLim)
		}
		style.YMin, style.YMax = s.YLim[0], s.YLim[1]
	}
	if s.Colormap != "" {
		style.Colormap = s.Colormap
	}
	if s.Density > 0 {
		style.Density = s.Density
	}
	if s.MinLength > 0 {
		style.MinLength = s.MinLength
	}
	if s.LineWidth > 0 {
		style.LineWidth = s.LineWidth
	}

	kind, err := render.ParseKind(s.Kind)
	if err != nil {
		return err
	}
	style.Kind = kind

	scale, err := field.ParseColorScale(s.ColorScale)
	if err != nil {
		return err
	}
	style.ColorScale = scale
	return nil
}
