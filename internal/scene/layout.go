package scene

import (
	"fmt"
	"math"

	"electric-field/internal/field"
	"electric-field/internal/render"
)

// Layout is one ready-to-render scene: where the charges sit, where the field
// is sampled and how the figure looks.
type Layout struct {
	Name    string
	Charges []field.Charge
	Grid    field.Grid
	Style   render.Style
	// File is the output name written by Runner.Run.
	File string
	// Interactive scenes are shown in a window instead of saved by default.
	Interactive bool
}

func (l Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("layout has no name")
	}
	if l.File == "" {
		return fmt.Errorf("layout %s: no output file", l.Name)
	}
	if l.Grid.NumX() < 2 || l.Grid.NumY() < 2 {
		return fmt.Errorf("layout %s: grid needs at least 2x2 points", l.Name)
	}
	for i, c := range l.Charges {
		if !finite(c.X) || !finite(c.Y) || !finite(c.Q) {
			return fmt.Errorf("layout %s: charge %d is not finite", l.Name, i)
		}
	}
	if err := l.Style.Validate(); err != nil {
		return fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return nil
}

// Field superposes the layout's charges on its grid.
func (l Layout) Field() *field.Field {
	return field.Superpose(l.Charges, l.Grid)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%s must be a positive number, got %g", name, v)
	}
	return nil
}

func nonzero(name string, v float64) error {
	if !finite(v) || v == 0 {
		return fmt.Errorf("%s must be a non-zero number, got %g", name, v)
	}
	return nil
}
