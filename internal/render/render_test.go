package render

import (
	"bytes"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"electric-field/internal/field"
)

func dipoleField(t *testing.T) ([]field.Charge, *field.Field) {
	t.Helper()
	g, err := field.Square(2.5, 30)
	require.NoError(t, err)
	charges := []field.Charge{{X: 0, Y: 0.5, Q: 1}, {X: 0, Y: -0.5, Q: -1}}
	return charges, field.Superpose(charges, g)
}

func TestFigure(t *testing.T) {
	charges, f := dipoleField(t)

	t.Run("PDF", func(t *testing.T) {
		style := DefaultStyle(2.5)
		style.Width, style.Height = 4, 3
		fig, err := NewFigure(style)
		require.NoError(t, err)
		require.NoError(t, fig.AddField(f))
		fig.AddCharges(charges)

		var buf bytes.Buffer
		_, err = fig.WriteTo(&buf, "pdf")
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	})

	t.Run("Quiver SVG", func(t *testing.T) {
		style := DefaultStyle(2.5)
		style.Width, style.Height = 4, 3
		style.Kind = KindQuiver
		fig, err := NewFigure(style)
		require.NoError(t, err)
		require.NoError(t, fig.AddField(f))

		var buf bytes.Buffer
		_, err = fig.WriteTo(&buf, "svg")
		require.NoError(t, err)
		require.Contains(t, buf.String(), "<svg")
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		style := DefaultStyle(2.5)
		style.Width, style.Height = 3, 3
		fig, err := NewFigure(style)
		require.NoError(t, err)
		require.NoError(t, fig.AddField(f))

		path := filepath.Join(t.TempDir(), "out.pdf")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
		require.NoError(t, fig.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("Save Errors", func(t *testing.T) {
		fig, err := NewFigure(DefaultStyle(1))
		require.NoError(t, err)
		require.Error(t, fig.Save(filepath.Join(t.TempDir(), "noext")))

		err = fig.Save(filepath.Join(t.TempDir(), "missing", "out.pdf"))
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.Contains(t, err.Error(), "create ")
	})

	t.Run("Image", func(t *testing.T) {
		style := DefaultStyle(2.5)
		fig, err := NewFigure(style)
		require.NoError(t, err)
		require.NoError(t, fig.AddField(f))
		fig.AddCharges(charges)

		img, vp := fig.Image(400, 300)
		require.Equal(t, 400, img.Bounds().Dx())
		require.Equal(t, 300, img.Bounds().Dy())
		require.True(t, vp.Left >= 0 && vp.Right <= 400 && vp.Left < vp.Right)
		require.True(t, vp.Top >= 0 && vp.Bottom <= 300 && vp.Top < vp.Bottom)
	})
}

func TestMarkers(t *testing.T) {
	style := DefaultStyle(2.5)
	fig, err := NewFigure(style)
	require.NoError(t, err)

	// |q| = 10 gives a 0.3 wide disc, large enough to resolve in pixels
	fig.AddCharges([]field.Charge{{X: -1, Y: 0, Q: 10}, {X: 1, Y: 0, Q: -10}})
	img, vp := fig.Image(400, 300)

	pixel := func(x, y float64) (r, g, b, a uint32) {
		px, py := vp.ToScreen(x, y)
		return img.At(int(math.Round(px)), int(math.Round(py))).RGBA()
	}

	t.Run("Positive Is Blue", func(t *testing.T) {
		for _, dx := range []float64{0, 0.15, -0.15} {
			r, g, b, a := pixel(-1+dx, 0)
			require.Greater(t, a, uint32(0x4000))
			require.Greater(t, b, uint32(0x4000))
			require.Less(t, r, uint32(0x1000))
			require.Less(t, g, uint32(0x1000))
		}
	})

	t.Run("Negative Is Red", func(t *testing.T) {
		for _, dy := range []float64{0, 0.15, -0.15} {
			r, g, b, a := pixel(1, dy)
			require.Greater(t, a, uint32(0x4000))
			require.Greater(t, r, uint32(0x4000))
			require.Less(t, b, uint32(0x1000))
			require.Less(t, g, uint32(0x1000))
		}
	})

	t.Run("Radius Scales With Charge", func(t *testing.T) {
		for _, p := range [][2]float64{{-1 + 0.45, 0}, {-1, 0.6}, {1 - 0.45, 0}, {1, -0.6}} {
			_, _, _, a := pixel(p[0], p[1])
			require.Zero(t, a, "marker paint at %v", p)
		}
	})
}

func TestQuiverPivot(t *testing.T) {
	mid := vg.Point{X: 40, Y: 25}
	for _, dir := range [][2]float64{{1, 0}, {0, -1}, {0.6, 0.8}, {-0.8, 0.6}} {
		tail, tip := pivot(mid, dir[0], dir[1], 10)

		require.InDelta(t, float64(mid.X), float64(tail.X+tip.X)/2, 1e-9)
		require.InDelta(t, float64(mid.Y), float64(tail.Y+tip.Y)/2, 1e-9)
		require.InDelta(t, 10, math.Hypot(float64(tip.X-tail.X), float64(tip.Y-tail.Y)), 1e-9)
		// points along (u, v)
		require.Greater(t, float64(tip.X-tail.X)*dir[0]+float64(tip.Y-tail.Y)*dir[1], 0.0)
	}
}

func TestQuiverStaysInDataArea(t *testing.T) {
	_, f := dipoleField(t)
	style := DefaultStyle(2.5)
	style.Kind = KindQuiver
	fig, err := NewFigure(style)
	require.NoError(t, err)
	require.NoError(t, fig.AddField(f))

	img, vp := fig.Image(400, 300)
	// strip right of the data area, above the tick labels
	for x := int(math.Ceil(vp.Right)) + 2; x < img.Bounds().Max.X; x++ {
		for y := int(vp.Top) + 5; y < int(vp.Bottom)-5; y++ {
			_, _, _, a := img.At(x, y).RGBA()
			require.Zero(t, a, "arrow paint at (%d, %d)", x, y)
		}
	}
}

func TestStyle(t *testing.T) {
	s := DefaultStyle(2)
	require.NoError(t, s.Validate())

	bad := s
	bad.Colormap = "viridis-ish"
	require.Error(t, bad.Validate())
	_, err := NewFigure(bad)
	require.Error(t, err)

	bad = s
	bad.XMin = bad.XMax
	require.Error(t, bad.Validate())

	bad = s
	bad.Width = 0
	require.Error(t, bad.Validate())

	k, err := ParseKind("quiver")
	require.NoError(t, err)
	require.Equal(t, KindQuiver, k)
	_, err = ParseKind("contour")
	require.Error(t, err)
}

func TestViewport(t *testing.T) {
	vp := Viewport{Left: 50, Right: 450, Top: 10, Bottom: 290, XMin: -2, XMax: 2, YMin: -1, YMax: 1}

	x, y := vp.ToData(250, 150)
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, 0, y, 1e-12)

	x, y = vp.ToData(50, 10)
	require.InDelta(t, -2, x, 1e-12)
	require.InDelta(t, 1, y, 1e-12)

	px, py := vp.ToScreen(1.3, -0.4)
	x, y = vp.ToData(px, py)
	require.InDelta(t, 1.3, x, 1e-12)
	require.InDelta(t, -0.4, y, 1e-12)

	require.True(t, vp.Contains(60, 20))
	require.False(t, vp.Contains(10, 20))
}

func TestFiniteRange(t *testing.T) {
	inf := math.Inf(1)
	lo, hi := finiteRange([]float64{-inf, 2, -1, inf})
	require.Equal(t, -1.0, lo)
	require.Equal(t, 2.0, hi)

	lo, hi = finiteRange(nil)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 1.0, hi)
}
