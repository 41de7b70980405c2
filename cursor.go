package pixelcam

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMode is returned when a cursor mapping is requested for
	// a camera mode the unprojector does not know how to invert.
	ErrUnsupportedMode = errors.New("pixelcam: unsupported camera mode")
	// ErrEmptyViewport is returned when the viewport or window has zero area.
	ErrEmptyViewport = errors.New("pixelcam: empty viewport")
)

// UnprojectRequest carries everything needed to map one physical pointer
// position into world space.
type UnprojectRequest struct {
	// Physical is the pointer position in window pixels, origin top-left.
	Physical Vec2
	Mode     Mode
	Viewport ViewportRect
	Window   UVec2

	Projection Projection
	View       View
}

// RequestFor builds an UnprojectRequest from a camera's current fit.
func RequestFor(fit Fit, view View, mode Mode) UnprojectRequest {
	return UnprojectRequest{
		Mode:       mode,
		Viewport:   fit.Viewport,
		Window:     fit.Window,
		Projection: fit.Projection,
		View:       view,
	}
}

// Unproject maps req.Physical to world space.
//
// In ModeScaled the point is clamped into the viewport, normalized to [0,1]
// relative to it, re-scaled into the viewport span and fed through the
// inverse view-projection. In ModeTexture the raw physical point goes
// straight through the inverse projection with the whole window as the
// viewport, since the canvas texture is already a 1:1 virtual frame.
func Unproject(req UnprojectRequest) (Vec2, error) {
	switch req.Mode {
	case ModeScaled:
		vp := req.Viewport
		if vp.Empty() {
			return Vec2{}, ErrEmptyViewport
		}
		lo, hi := vp.Min(), vp.Max()
		x := clamp(req.Physical.X, float64(lo.X), float64(hi.X))
		y := clamp(req.Physical.Y, float64(lo.Y), float64(hi.Y))

		spanW, spanH := float64(vp.Size.X), float64(vp.Size.Y)
		nx := (x - float64(lo.X)) / spanW
		ny := (y - float64(lo.Y)) / spanH
		return viewportToWorld(req.Projection, req.View, nx*spanW, ny*spanH, spanW, spanH), nil

	case ModeTexture:
		if req.Window.Empty() {
			return Vec2{}, ErrEmptyViewport
		}
		w, h := float64(req.Window.X), float64(req.Window.Y)
		return viewportToWorld(req.Projection, req.View, req.Physical.X, req.Physical.Y, w, h), nil

	default:
		return Vec2{}, fmt.Errorf("%w: %v", ErrUnsupportedMode, req.Mode)
	}
}

// viewportToWorld maps a viewport-local point (origin top-left, Y down) of a
// w x h viewport into world space.
func viewportToWorld(p Projection, v View, x, y, w, h float64) Vec2 {
	ndcX := x/w*2 - 1
	ndcY := 1 - y/h*2
	lx, ly := p.Unproject(ndcX, ndcY)
	wx, wy := v.ToWorld(lx, ly)
	return Vec2{wx, wy}
}

// worldToViewport is the inverse of viewportToWorld.
func worldToViewport(p Projection, v View, wx, wy, w, h float64) (x, y float64) {
	lx, ly := v.ToLocal(wx, wy)
	ndcX, ndcY := p.Project(lx, ly)
	x = (ndcX + 1) / 2 * w
	y = (1 - ndcY) / 2 * h
	return
}

// Pointer is a physical pointer sample. Present is false when there is no
// cursor over the window and no active touch.
type Pointer struct {
	X, Y    float64
	Present bool
}

// CursorState holds the world-space cursor of one camera. It is owned by
// the host loop and updated once per frame.
type CursorState struct {
	World Vec2
	// Known is false until the first successful update.
	Known bool
}

// Update maps p through req and stores the result. When p is not present
// the last known position is kept. On error the state is left unchanged.
func (s *CursorState) Update(p Pointer, req UnprojectRequest) error {
	if !p.Present {
		return nil
	}
	req.Physical = Vec2{p.X, p.Y}
	world, err := Unproject(req)
	if err != nil {
		return err
	}
	s.World = world
	s.Known = true
	return nil
}
