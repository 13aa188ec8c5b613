package viewer

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"electric-field/internal/field"
	"electric-field/internal/render"
	"electric-field/internal/scene"
)

const (
	pixelsPerInch = 100 // window pixels per figure inch
	particleSteps = 400 // particle steps across the axes width
)

// Viewer shows a layout in a window. Clicks add charges and T releases a
// test charge that follows the field.
type Viewer struct {
	layout scene.Layout
	runner *scene.Runner
	logger *zap.Logger

	width, height int

	bgImage  *ebiten.Image
	viewport render.Viewport
	dirty    bool

	lastLeft  bool
	lastRight bool

	particle field.Particle
}

func New(l scene.Layout, logger *zap.Logger) *Viewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewer{
		layout: l,
		runner: scene.NewRunner("", logger),
		logger: logger,
		width:  int(l.Style.Width * pixelsPerInch),
		height: int(l.Style.Height * pixelsPerInch),
		dirty:  true,
	}
}

// Show opens a window for l and blocks until it is closed.
func Show(l scene.Layout, logger *zap.Logger) error {
	v := New(l, logger)

	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(l.Name)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (v *Viewer) redraw() error {
	fig, err := v.runner.Figure(v.layout)
	if err != nil {
		return err
	}
	img, vp := fig.Image(v.width, v.height)
	v.bgImage = ebiten.NewImageFromImage(img)
	v.viewport = vp
	v.dirty = false
	return nil
}

func (v *Viewer) addChargeFromMouse(q float64) {
	x, y := ebiten.CursorPosition()
	if !v.viewport.Contains(float64(x), float64(y)) {
		return
	}
	wx, wy := v.viewport.ToData(float64(x), float64(y))

	// a fresh slice keeps the caller's layout untouched
	charges := make([]field.Charge, len(v.layout.Charges), len(v.layout.Charges)+1)
	copy(charges, v.layout.Charges)
	v.layout.Charges = append(charges, field.Charge{X: wx, Y: wy, Q: q})
	v.dirty = true

	v.logger.Debug("charge added", zap.Float64("x", wx), zap.Float64("y", wy), zap.Float64("q", q))
}

func (v *Viewer) spawnParticleAtMouse() {
	x, y := ebiten.CursorPosition()
	if !v.viewport.Contains(float64(x), float64(y)) {
		return
	}
	wx, wy := v.viewport.ToData(float64(x), float64(y))
	v.particle = field.Particle{X: wx, Y: wy, Live: true}
}

func (v *Viewer) updateParticle() {
	if !v.particle.Live {
		return
	}
	s := v.layout.Style
	v.particle.Step(v.layout.Charges, (s.XMax-s.XMin)/particleSteps)
	v.particle.Within(s.XMin, s.XMax, s.YMin, s.YMax)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	leftNow := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rightNow := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if leftNow && !v.lastLeft {
		v.addChargeFromMouse(+1)
	}
	if rightNow && !v.lastRight {
		v.addChargeFromMouse(-1)
	}

	v.lastLeft = leftNow
	v.lastRight = rightNow

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.spawnParticleAtMouse()
	}

	if v.dirty {
		if err := v.redraw(); err != nil {
			return err
		}
	}

	v.updateParticle()

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if v.bgImage != nil {
		screen.DrawImage(v.bgImage, nil)
	}

	if v.particle.Live {
		px, py := v.viewport.ToScreen(v.particle.X, v.particle.Y)
		vector.DrawFilledCircle(screen, float32(px), float32(py), 4, color.RGBA{255, 200, 0, 255}, true)
	}

	face := basicfont.Face7x13
	text.Draw(screen, "Left click: + charge, Right click: - charge, T: test charge, Esc: quit", face, 10, 20, color.Black)
	text.Draw(screen, "Blue: +q, Red: -q, Yellow: test charge", face, 10, 40, color.Black)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
