package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"electric-field/internal/field"
)

// Figure is an explicit drawing target for one scene. Every scene gets its
// own Figure; nothing is shared between figures.
type Figure struct {
	style Style
	plot  *plot.Plot
}

func NewFigure(style Style) (*Figure, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	p := plot.New()
	p.BackgroundColor = color.Transparent
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel
	p.X.Padding = 0
	p.Y.Padding = 0
	return &Figure{style: style, plot: p}, nil
}

func (f *Figure) Style() Style { return f.style }

// AddField draws f as streamlines or arrows, depending on the figure style.
func (f *Figure) AddField(fl *field.Field) error {
	switch f.style.Kind {
	case KindQuiver:
		f.plot.Add(NewQuiver(fl))
	default:
		s, err := NewStreams(fl, f.style)
		if err != nil {
			return err
		}
		f.plot.Add(s)
	}
	return nil
}

func (f *Figure) AddCharges(charges []field.Charge) {
	f.plot.Add(&Markers{Charges: charges})
}

// limit pins the axes to the style limits; plotters widen them on Add.
func (f *Figure) limit() {
	f.plot.X.Min, f.plot.X.Max = f.style.XMin, f.style.XMax
	f.plot.Y.Min, f.plot.Y.Max = f.style.YMin, f.style.YMax
}

// WriteTo encodes the figure in the given format (pdf, svg, png, eps, ...).
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	f.limit()
	wt, err := f.plot.WriterTo(vg.Length(f.style.Width)*vg.Inch, vg.Length(f.style.Height)*vg.Inch, format)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", format, err)
	}
	return wt.WriteTo(w)
}

// Save writes the figure to path, replacing any existing file. The format is
// taken from the extension.
func (f *Figure) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("no image format in file name %q", path)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteTo(out, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Image rasterizes the figure to a w x h pixel image, one pixel per point,
// and reports where the data area landed.
func (f *Figure) Image(w, h int) (image.Image, Viewport) {
	f.limit()
	c := vgimg.NewWith(vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, w, h))))
	dc := draw.New(c)
	f.plot.Draw(dc)

	area := f.plot.DataCanvas(dc).Rectangle
	vp := Viewport{
		Left:   float64(area.Min.X),
		Right:  float64(area.Max.X),
		Top:    float64(h) - float64(area.Max.Y),
		Bottom: float64(h) - float64(area.Min.Y),
		XMin:   f.style.XMin,
		XMax:   f.style.XMax,
		YMin:   f.style.YMin,
		YMax:   f.style.YMax,
	}
	return c.Image(), vp
}
