package render

import "math"

// Fractions of the figure occupied by the plot area. The right 35% is left free for
// the legend.
const (
	plotLeft   = 0.05
	plotRight  = 0.65
	plotTop    = 0.10
	plotBottom = 0.90
)

// layout maps polar data coordinates onto the figure. The polar axes is the largest
// circle that fits the plot area, centered in it; MaxRadius lands on its edge.
type layout struct {
	width, height int
	cx, cy        float64
	radius        float64 // pixels
	scale         float64 // pixels per data unit
}

func newLayout(width, height int, maxRadius float64) layout {
	w, h := float64(width), float64(height)
	left, right := plotLeft*w, plotRight*w
	top, bottom := plotTop*h, plotBottom*h
	side := math.Min(right-left, bottom-top)
	l := layout{
		width:  width,
		height: height,
		cx:     (left + right) / 2,
		cy:     (top + bottom) / 2,
		radius: side / 2,
	}
	if maxRadius > 0 {
		l.scale = l.radius / maxRadius
	}
	return l
}

// point converts (theta, r) to pixel coordinates. Theta runs counterclockwise from
// the positive x axis, so pi/2 is straight up.
func (l layout) point(theta, r float64) (int, int) {
	x := l.cx + r*l.scale*math.Cos(theta)
	y := l.cy - r*l.scale*math.Sin(theta)
	return int(math.Round(x)), int(math.Round(y))
}

// axesTop is the y of the top edge of the polar axes.
func (l layout) axesTop() int { return int(math.Round(l.cy - l.radius)) }

// legendAnchor is where the legend's left edge goes: 1.02 axes widths right of the
// axes' left edge, vertically centered on the axes.
func (l layout) legendAnchor() (int, int) {
	left := l.cx - l.radius
	return int(math.Round(left + 1.02*2*l.radius)), int(math.Round(l.cy))
}

// linspace returns n evenly spaced samples over [start, stop], both ends included.
func linspace(start, stop float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
