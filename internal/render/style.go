package render

import (
	"fmt"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"electric-field/internal/field"
)

// Kind selects how a field is drawn.
type Kind int

const (
	KindStream Kind = iota
	KindQuiver
)

func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindQuiver:
		return "quiver"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "stream":
		return KindStream, nil
	case "quiver":
		return KindQuiver, nil
	}
	return 0, fmt.Errorf("unknown plot kind %q", s)
}

// Style fixes the look of one figure.
type Style struct {
	// Width and Height are the figure size in inches.
	Width, Height float64

	XMin, XMax float64
	YMin, YMax float64

	Kind       Kind
	Colormap   string
	ColorScale field.ColorScale
	// Density and MinLength control streamline spacing.
	Density   float64
	MinLength float64
	LineWidth float64 // points
	ArrowSize float64

	XLabel, YLabel string
}

// DefaultStyle matches the common settings of the streamline scenes.
func DefaultStyle(lim float64) Style {
	return Style{
		Width:     20,
		Height:    14,
		XMin:      -lim,
		XMax:      lim,
		YMin:      -lim,
		YMax:      lim,
		Kind:      KindStream,
		Colormap:  "inferno",
		Density:   2,
		MinLength: 0.1,
		LineWidth: 1,
		ArrowSize: 1.5,
		XLabel:    "x",
		YLabel:    "y",
	}
}

func (s Style) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) {
		return fmt.Errorf("figure size must be positive, got %gx%g", s.Width, s.Height)
	}
	if !(s.XMin < s.XMax) || !(s.YMin < s.YMax) {
		return fmt.Errorf("empty axis limits [%g, %g]x[%g, %g]", s.XMin, s.XMax, s.YMin, s.YMax)
	}
	if s.Kind == KindStream {
		if _, err := Colormap(s.Colormap); err != nil {
			return err
		}
	}
	return nil
}

// Colormap resolves a colormap by name.
func Colormap(name string) (palette.ColorMap, error) {
	switch name {
	case "", "inferno", "blackbody":
		return moreland.ExtendedBlackBody(), nil
	case "kindlmann":
		return moreland.ExtendedKindlmann(), nil
	case "seismic":
		return moreland.SmoothBlueRed(), nil
	}
	return nil, fmt.Errorf("unknown colormap %q", name)
}
