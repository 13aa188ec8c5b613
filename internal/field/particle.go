package field

import "math"

// Particle is a test charge that drifts along the field direction.
type Particle struct {
	X, Y float64
	Live bool
}

// Step moves a live particle by ds along the normalized field. The particle dies
// when it gets within ds of a charge; it stays put where the field vanishes.
func (p *Particle) Step(charges []Charge, ds float64) {
	if !p.Live {
		return
	}

	Ex, Ey := At(charges, p.X, p.Y)
	E := math.Hypot(Ex, Ey)
	if E < 1e-12 || math.IsNaN(E) || math.IsInf(E, 0) {
		return
	}

	p.X += Ex / E * ds
	p.Y += Ey / E * ds

	for _, c := range charges {
		if math.Hypot(p.X-c.X, p.Y-c.Y) < ds {
			p.Live = false
			return
		}
	}
}

// Within kills the particle once it leaves the given box.
func (p *Particle) Within(xmin, xmax, ymin, ymax float64) {
	if p.X < xmin || p.X > xmax || p.Y < ymin || p.Y > ymax {
		p.Live = false
	}
}
