package render

// Viewport relates image pixels (origin top-left, y down) to data
// coordinates inside the plot's data area.
type Viewport struct {
	Left, Right, Top, Bottom float64
	XMin, XMax, YMin, YMax   float64
}

func (v Viewport) ToData(px, py float64) (float64, float64) {
	x := v.XMin + (px-v.Left)/(v.Right-v.Left)*(v.XMax-v.XMin)
	y := v.YMin + (v.Bottom-py)/(v.Bottom-v.Top)*(v.YMax-v.YMin)
	return x, y
}

func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	px := v.Left + (x-v.XMin)/(v.XMax-v.XMin)*(v.Right-v.Left)
	py := v.Bottom - (y-v.YMin)/(v.YMax-v.YMin)*(v.Bottom-v.Top)
	return px, py
}

// Contains reports whether the pixel lies inside the data area.
func (v Viewport) Contains(px, py float64) bool {
	return px >= v.Left && px <= v.Right && py >= v.Top && py <= v.Bottom
}
