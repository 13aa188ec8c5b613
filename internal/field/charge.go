package field

import "math"

// Charge is a point charge of magnitude Q at (X, Y).
type Charge struct {
	X, Y float64
	Q    float64
}

// Contribution returns the field of c at (x, y) in natural units (k = 1).
// The point must not coincide with the charge.
func Contribution(c Charge, x, y float64) (float64, float64) {
	dx := x - c.X
	dy := y - c.Y

	r2 := dx*dx + dy*dy
	factor := c.Q / math.Pow(r2, 1.5) // q/r^3

	return factor * dx, factor * dy
}

// At sums the contributions of all charges at (x, y).
func At(charges []Charge, x, y float64) (float64, float64) {
	var Ex, Ey float64
	for _, c := range charges {
		ex, ey := Contribution(c, x, y)
		Ex += ex
		Ey += ey
	}
	return Ex, Ey
}
