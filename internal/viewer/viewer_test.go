package viewer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"electric-field/internal/field"
	"electric-field/internal/render"
	"electric-field/internal/scene"
)

func singleCharge(t *testing.T) scene.Layout {
	t.Helper()
	g, err := field.Square(1, 10)
	require.NoError(t, err)
	return scene.Layout{
		Name:    "single",
		Charges: []field.Charge{{X: 0.05, Y: 0.05, Q: 1}},
		Grid:    g,
		Style:   render.DefaultStyle(1),
		File:    "single.pdf",
	}
}

func TestNew(t *testing.T) {
	l, err := scene.Boxes()
	require.NoError(t, err)

	v := New(l, nil)
	require.Equal(t, 1000, v.width)
	require.Equal(t, 700, v.height)
	require.True(t, v.dirty)

	w, h := v.Layout(10, 10)
	require.Equal(t, 1000, w)
	require.Equal(t, 700, h)
}

func TestUpdateParticle(t *testing.T) {
	t.Run("Follows Field", func(t *testing.T) {
		v := New(singleCharge(t), nil)
		v.particle = field.Particle{X: 0.5, Y: 0.05, Live: true}

		v.updateParticle()
		require.True(t, v.particle.Live)
		// one step is a 400th of the axes width, pointing away from +q
		require.InDelta(t, 0.505, v.particle.X, 1e-9)
		require.InDelta(t, 0.05, v.particle.Y, 1e-9)
	})

	t.Run("Dies Outside Axes", func(t *testing.T) {
		v := New(singleCharge(t), nil)
		v.particle = field.Particle{X: 0.999, Y: 0.05, Live: true}

		v.updateParticle()
		require.False(t, v.particle.Live)
	})

	t.Run("Dead Particle Ignored", func(t *testing.T) {
		v := New(singleCharge(t), nil)
		v.updateParticle()
		require.Equal(t, field.Particle{}, v.particle)
	})
}
