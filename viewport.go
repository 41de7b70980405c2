package pixelcam

import "math"

// fitEpsilon absorbs float error when a zoomed size lands on an exact pixel
// count (1080/224*224 must floor to 1080, not 1079).
const fitEpsilon = 1e-9

// ViewportRect is the sub-region of the physical window that receives the
// rendered frame. Offset is measured from the window's top-left corner.
type ViewportRect struct {
	Offset UVec2
	Size   UVec2
}

// Min returns the top-left corner of the rectangle in physical pixels.
func (r ViewportRect) Min() UVec2 {
	return r.Offset
}

// Max returns the bottom-right corner (exclusive) in physical pixels.
func (r ViewportRect) Max() UVec2 {
	return UVec2{r.Offset.X + r.Size.X, r.Offset.Y + r.Size.Y}
}

// Empty reports whether the rectangle has zero area.
func (r ViewportRect) Empty() bool {
	return r.Size.Empty()
}

// Contains reports whether the physical point (x, y) lies inside the
// rectangle. Like Max, the right and bottom edges are exclusive.
func (r ViewportRect) Contains(x, y float64) bool {
	lo, hi := r.Min(), r.Max()
	return x >= float64(lo.X) && x < float64(hi.X) &&
		y >= float64(lo.Y) && y < float64(hi.Y)
}

// Rect returns the rectangle as a float Rect in window coordinates.
func (r ViewportRect) Rect() Rect {
	return Rect{
		X:      float64(r.Offset.X),
		Y:      float64(r.Offset.Y),
		Width:  float64(r.Size.X),
		Height: float64(r.Size.Y),
	}
}

// FitViewport computes the letterboxed viewport for a virtual frame of
// desiredW x desiredH pixels drawn at the given zoom inside a window of
// windowW x windowH physical pixels.
//
// A desired dimension <= 0 leaves that axis unconstrained: the viewport
// spans the whole window along it. The result is clamped to the window and
// centered by halving the slack on each axis. The second return value is
// false when the window or the result has zero area; callers keep their
// previous viewport in that case.
func FitViewport(windowW, windowH uint32, desiredW, desiredH int, zoom float64) (ViewportRect, bool) {
	if windowW == 0 || windowH == 0 {
		return ViewportRect{}, false
	}
	if !(zoom > 0) {
		zoom = 1
	}

	size := UVec2{windowW, windowH}
	if desiredW > 0 {
		size.X = fitAxis(windowW, desiredW, zoom)
	}
	if desiredH > 0 {
		size.Y = fitAxis(windowH, desiredH, zoom)
	}
	if size.Empty() {
		return ViewportRect{}, false
	}

	return ViewportRect{
		Offset: UVec2{(windowW - size.X) / 2, (windowH - size.Y) / 2},
		Size:   size,
	}, true
}

// fitAxis returns floor(zoom*desired) clamped to the window length.
func fitAxis(window uint32, desired int, zoom float64) uint32 {
	scaled := math.Floor(zoom*float64(desired) + fitEpsilon)
	if scaled >= float64(window) {
		return window
	}
	if scaled < 0 {
		return 0
	}
	return uint32(scaled)
}

// AspectViewport computes the largest sub-rectangle of the window matching
// the aspect ratio aspectW:aspectH, centered. Unlike FitViewport it does not
// snap to a zoom multiple; texture cameras use it to letterbox their canvas.
func AspectViewport(windowW, windowH, aspectW, aspectH uint32) (ViewportRect, bool) {
	if windowW == 0 || windowH == 0 {
		return ViewportRect{}, false
	}
	if aspectW == 0 || aspectH == 0 {
		return ViewportRect{Size: UVec2{windowW, windowH}}, true
	}

	aspect := float64(aspectW) / float64(aspectH)
	var size UVec2
	if float64(windowH)*aspect > float64(windowW) {
		// Window is too narrow: bars above and below.
		size = UVec2{windowW, uint32(math.Floor(float64(windowW)/aspect + fitEpsilon))}
	} else {
		size = UVec2{uint32(math.Floor(float64(windowH)*aspect + fitEpsilon)), windowH}
	}
	if size.X > windowW {
		size.X = windowW
	}
	if size.Y > windowH {
		size.Y = windowH
	}
	if size.Empty() {
		return ViewportRect{}, false
	}

	return ViewportRect{
		Offset: UVec2{(windowW - size.X) / 2, (windowH - size.Y) / 2},
		Size:   size,
	}, true
}
