package uihelpers

import "math"

// Figure size bounds in pixels. MaxFigureWidth keeps the RGBA raster at or below
// 4000x4000 (64 MB).
const (
	MinFigureWidth  = 800
	MaxFigureWidth  = 4000
	MinFigureHeight = 500
)

// ComputeFigureDimensions clamps the requested figure size. Width is kept within
// [MinFigureWidth, MaxFigureWidth]. A non-positive height derives from the width at
// the 16:10 aspect of the default figure; height is then kept between
// MinFigureHeight and the width. Text and legend sizes scale with the figure in the
// renderer, so any size in these bounds fits the legend.
func ComputeFigureDimensions(rawW, rawH int) (int, int) {
	w := rawW
	if w < MinFigureWidth {
		w = MinFigureWidth
	}
	if w > MaxFigureWidth {
		w = MaxFigureWidth
	}
	h := rawH
	if h <= 0 {
		h = w * 10 / 16
	}
	if h < MinFigureHeight {
		h = MinFigureHeight
	}
	if h > w {
		h = w
	}
	return w, h
}

// ComputeWindowSize scales a figure down (never up) to fit inside maxW x maxH while
// preserving its aspect ratio. Used for the initial window size.
func ComputeWindowSize(figW, figH int, maxW, maxH float32) (float32, float32) {
	if figW <= 0 || figH <= 0 {
		return maxW, maxH
	}
	w, h := float32(figW), float32(figH)
	s := math.Min(float64(maxW/w), float64(maxH/h))
	if s > 1 {
		s = 1
	}
	return float32(math.Round(float64(w) * s)), float32(math.Round(float64(h) * s))
}
