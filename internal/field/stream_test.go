package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpiralVisitsEveryCellOnce(t *testing.T) {
	for _, n := range []int{1, 2, 5, 60} {
		seen := make(map[[2]int]bool)
		cells := spiral(n, n)
		require.Len(t, cells, n*n)
		for _, c := range cells {
			require.False(t, seen[c], "cell %v visited twice", c)
			require.True(t, c[0] >= 0 && c[0] < n && c[1] >= 0 && c[1] < n)
			seen[c] = true
		}
		require.Equal(t, [2]int{0, 0}, cells[0])
	}
}

func TestInterpolate(t *testing.T) {
	// 3x2 grid: values equal x + 10y
	vals := []float64{0, 1, 2, 10, 11, 12}
	require.InDelta(t, 0, interpolate(vals, 3, 2, 0, 0), 1e-12)
	require.InDelta(t, 12, interpolate(vals, 3, 2, 2, 1), 1e-12)
	require.InDelta(t, 6.5, interpolate(vals, 3, 2, 1.5, 0.5), 1e-12)

	g := Grid{X: []float64{-1, 0, 1}, Y: []float64{0, 2}}
	require.InDelta(t, 6.5, Sample(g, vals, 0.5, 1), 1e-12)
}

func TestStreamlinesFollowField(t *testing.T) {
	g, err := Square(2.5, 60)
	require.NoError(t, err)
	charges := []Charge{{X: 0, Y: 0.5, Q: 1}, {X: 0, Y: -0.5, Q: -1}}
	f := Superpose(charges, g)

	lines := Streamlines(f, StreamOptions{Density: 1, MinLength: 0.1})
	require.NotEmpty(t, lines)

	steps, aligned := 0, 0
	for _, line := range lines {
		require.GreaterOrEqual(t, len(line), 2)
		for k := 0; k+1 < len(line); k++ {
			p, q := line[k], line[k+1]
			require.True(t, p.X >= -2.5-1e-9 && p.X <= 2.5+1e-9)
			require.True(t, p.Y >= -2.5-1e-9 && p.Y <= 2.5+1e-9)

			ex, ey := At(charges, p.X, p.Y)
			steps++
			if (q.X-p.X)*ex+(q.Y-p.Y)*ey > 0 {
				aligned++
			}
		}
	}
	// steps run with the local field; only a few close to the charges may not
	require.Greater(t, float64(aligned)/float64(steps), 0.98)
}

func TestStreamlinesDensity(t *testing.T) {
	g, err := Square(6, 100)
	require.NoError(t, err)
	f := Superpose([]Charge{
		{X: 1, Y: 1, Q: 1}, {X: 1, Y: -1, Q: -1},
		{X: -1, Y: 1, Q: -1}, {X: -1, Y: -1, Q: 1},
	}, g)

	sparse := Streamlines(f, StreamOptions{Density: 1, MinLength: 0.1})
	dense := Streamlines(f, StreamOptions{Density: 3.5, MinLength: 0.1})
	require.Greater(t, len(dense), len(sparse))
}

func TestStreamlinesDeterministic(t *testing.T) {
	g, err := Square(2.5, 40)
	require.NoError(t, err)
	f := Superpose([]Charge{{X: 0.3, Y: 0.2, Q: 1}}, g)

	require.Equal(t, Streamlines(f, DefaultStreamOptions()), Streamlines(f, DefaultStreamOptions()))
}

func TestStreamlineArrow(t *testing.T) {
	_, _, ok := Streamline{{X: 0, Y: 0}}.Arrow()
	require.False(t, ok)

	at, dir, ok := Streamline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}.Arrow()
	require.True(t, ok)
	require.Equal(t, Vec2{X: 1, Y: 0}, at)
	require.Equal(t, Vec2{X: 1, Y: 1}, dir)
}
