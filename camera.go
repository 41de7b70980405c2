package pixelcam

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a pixel-perfect 2D camera: a world position plus a projection
// that is refitted whenever the window changes size.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Rotation is the camera rotation in radians (counter-clockwise).
	Rotation float64
	// Mode selects how pointer positions are mapped back into the world.
	Mode Mode

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true. Bounds.Y is the bottom edge (world is Y-up).
	Bounds Rect

	fitter *Fitter
	window UVec2

	following   bool
	followX     float64
	followY     float64
	followLerp  float64
	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a Camera with the given projection config. The camera
// has no fit until the first Resize.
func NewCamera(cfg ProjectionConfig) *Camera {
	return &Camera{fitter: NewFitter(cfg)}
}

// Config returns the camera's projection config.
func (c *Camera) Config() ProjectionConfig {
	return c.fitter.Config
}

// SetConfig replaces the projection config and refits against the last
// known window size.
func (c *Camera) SetConfig(cfg ProjectionConfig) {
	c.fitter.Config = cfg
	if !c.window.Empty() {
		c.fitter.Update(c.window.X, c.window.Y)
	}
}

// Resize refits the camera to a window of w x h physical pixels. It reports
// whether the fit changed. A degenerate window keeps the previous fit.
func (c *Camera) Resize(w, h uint32) bool {
	prev, hadPrev := c.fitter.Current()
	next, ok := c.fitter.Update(w, h)
	if !ok {
		return false
	}
	c.window = UVec2{w, h}
	return !hadPrev || prev != next
}

// Fit returns the camera's current fit. ok is false before the first
// successful Resize.
func (c *Camera) Fit() (Fit, bool) {
	return c.fitter.Current()
}

// Zoom returns the current zoom factor, or the configured zoom before the
// first Resize.
func (c *Camera) Zoom() float64 {
	if fit, ok := c.fitter.Current(); ok {
		return fit.Projection.Zoom
	}
	return c.fitter.Config.Zoom
}

// Viewport returns the current letterboxed viewport.
func (c *Camera) Viewport() ViewportRect {
	fit, _ := c.fitter.Current()
	return fit.Viewport
}

// Projection returns the current projection bounds.
func (c *Camera) Projection() Projection {
	fit, _ := c.fitter.Current()
	return fit.Projection
}

// View returns the camera's placement in world space.
func (c *Camera) View() View {
	return View{X: c.X, Y: c.Y, Rotation: c.Rotation}
}

// ViewProjection returns projection * view as a 4x4 matrix.
func (c *Camera) ViewProjection() Mat4 {
	return c.Projection().Matrix().Mul(c.View().Matrix())
}

// ScreenToWorld converts physical window coordinates to world coordinates.
// Points outside the viewport are clamped to its edge.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64, err error) {
	fit, _ := c.fitter.Current()
	req := RequestFor(fit, c.View(), c.Mode)
	req.Physical = Vec2{sx, sy}
	p, err := Unproject(req)
	return p.X, p.Y, err
}

// WorldToScreen converts world coordinates to physical window coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	fit, _ := c.fitter.Current()
	vp := fit.Viewport
	x, y := worldToViewport(fit.Projection, c.View(), wx, wy, float64(vp.Size.X), float64(vp.Size.Y))
	return x + float64(vp.Offset.X), y + float64(vp.Offset.Y)
}

// GeoM returns the world-to-window transform for drawing world-space
// images with Ebitengine. Image Y runs down, so the Y axis is flipped.
func (c *Camera) GeoM() ebiten.GeoM {
	fit, _ := c.fitter.Current()
	p := fit.Projection
	vp := fit.Viewport

	var m ebiten.GeoM
	if p.Width() == 0 || p.Height() == 0 {
		return m
	}
	sx := float64(vp.Size.X) / p.Width()
	sy := float64(vp.Size.Y) / p.Height()
	// Camera-local to window: scale, flip Y, move the projection's
	// top-left corner to the viewport offset.
	toWindow := [6]float64{
		sx, 0, 0, -sy,
		float64(vp.Offset.X) - p.Left*sx,
		float64(vp.Offset.Y) + p.Top*sy,
	}
	t := multiplyAffine(toWindow, c.View().inverse())
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// VisibleBounds returns the axis-aligned rect of the visible world area.
// Y is the bottom edge.
func (c *Camera) VisibleBounds() Rect {
	p := c.Projection()
	v := c.View()

	x0, y0 := v.ToWorld(p.Left, p.Bottom)
	x1, y1 := v.ToWorld(p.Right, p.Bottom)
	x2, y2 := v.ToWorld(p.Right, p.Top)
	x3, y3 := v.ToWorld(p.Left, p.Top)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Follow makes the camera track the world point (x, y). A lerp of 1.0 snaps
// immediately; lower values give smoother following. Call Follow every
// frame with the target's latest position.
func (c *Camera) Follow(x, y, lerp float64) {
	c.following = true
	c.followX = x
	c.followY = y
	c.followLerp = lerp
}

// Unfollow stops tracking the follow target.
func (c *Camera) Unfollow() {
	c.following = false
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the fixed zoom of the camera over duration seconds.
// Auto-fit cameras derive their zoom from the window and ignore it.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.fitter.Config.Zoom), float32(zoom), duration, easeFn)
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow, scroll, zoom and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.following {
		c.X += (c.followX - c.X) * c.followLerp
		c.Y += (c.followY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		cfg := c.fitter.Config
		cfg.Zoom = float64(val)
		c.SetConfig(cfg)
		if done {
			c.zoomTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	p := c.Projection()

	minX := c.Bounds.X - p.Left
	maxX := c.Bounds.X + c.Bounds.Width - p.Right
	minY := c.Bounds.Y - p.Bottom
	maxY := c.Bounds.Y + c.Bounds.Height - p.Top

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}
