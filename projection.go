package pixelcam

import "math"

// Default projection values.
const (
	DefaultZoom = 1.0
	DefaultNear = 0.0
	DefaultFar  = 1000.0

	// DefaultWidth and DefaultHeight are the virtual resolution used by
	// NewCamera when no config is supplied (the SNES frame).
	DefaultWidth  = 256
	DefaultHeight = 224
)

// ProjectionConfig describes how a pixel camera derives its zoom and
// projection from the window size.
//
// When DesiredWidth and/or DesiredHeight are positive the camera is in
// auto-fit mode and Zoom is recomputed on every resize. Otherwise Zoom is
// the fixed size of a virtual pixel in physical pixels.
type ProjectionConfig struct {
	// DesiredWidth is the virtual width to fit in the window. <= 0 means unset.
	DesiredWidth int `yaml:"desired_width"`
	// DesiredHeight is the virtual height to fit in the window. <= 0 means unset.
	DesiredHeight int `yaml:"desired_height"`
	// Zoom is used when neither desired dimension is set.
	Zoom float64 `yaml:"zoom"`
	// Centered puts world (0, 0) at the pixel closest to the viewport center.
	// Otherwise (0, 0) is the bottom-left corner.
	Centered bool `yaml:"centered"`
	// AllowFractionalZoom lets virtual pixels cover a non-integer number of
	// physical pixels. Off by default: pixels stay crisp.
	AllowFractionalZoom bool    `yaml:"allow_fractional_zoom"`
	Near                float64 `yaml:"near"`
	Far                 float64 `yaml:"far"`
}

// DefaultProjectionConfig returns a centered, fixed zoom 1 config.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Zoom:     DefaultZoom,
		Centered: true,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// ProjectionFromZoom returns a config where every virtual pixel is zoom
// physical pixels wide. A non-integral zoom enables fractional zoom.
func ProjectionFromZoom(zoom float64) ProjectionConfig {
	c := DefaultProjectionConfig()
	c.Zoom = zoom
	c.AllowFractionalZoom = math.Round(zoom) != zoom
	return c
}

// ProjectionFromResolution returns a config that fits width x height virtual
// pixels inside the window.
func ProjectionFromResolution(width, height int, fractional bool) ProjectionConfig {
	c := DefaultProjectionConfig()
	c.DesiredWidth = width
	c.DesiredHeight = height
	c.AllowFractionalZoom = fractional
	return c
}

// ProjectionFromWidth returns a config that fits width virtual pixels
// horizontally; the height follows the window.
func ProjectionFromWidth(width int, fractional bool) ProjectionConfig {
	c := DefaultProjectionConfig()
	c.DesiredWidth = width
	c.AllowFractionalZoom = fractional
	return c
}

// ProjectionFromHeight returns a config that fits height virtual pixels
// vertically; the width follows the window.
func ProjectionFromHeight(height int, fractional bool) ProjectionConfig {
	c := DefaultProjectionConfig()
	c.DesiredHeight = height
	c.AllowFractionalZoom = fractional
	return c
}

// AutoFit reports whether zoom is derived from a desired resolution.
func (c ProjectionConfig) AutoFit() bool {
	return c.DesiredWidth > 0 || c.DesiredHeight > 0
}

// ZoomFor returns the zoom factor for a window of windowW x windowH physical
// pixels. The result is always >= 1.
//
// In auto-fit mode the zoom is the smaller of the per-axis ratios; without
// fractional zoom it is floored so the virtual frame never overflows the
// window. In fixed mode the configured Zoom is rounded to the nearest
// integer unless fractional zoom is allowed.
func (c ProjectionConfig) ZoomFor(windowW, windowH uint32) float64 {
	w, h := float64(windowW), float64(windowH)

	zoom := c.Zoom
	switch {
	case c.DesiredWidth > 0 && c.DesiredHeight > 0:
		zoom = math.Min(w/float64(c.DesiredWidth), h/float64(c.DesiredHeight))
	case c.DesiredWidth > 0:
		zoom = w / float64(c.DesiredWidth)
	case c.DesiredHeight > 0:
		zoom = h / float64(c.DesiredHeight)
	}

	if !c.AllowFractionalZoom {
		if c.AutoFit() {
			zoom = math.Floor(zoom + fitEpsilon)
		} else {
			zoom = math.Round(zoom)
		}
	}
	if !(zoom >= 1) {
		// Catches NaN and zero zoom as well as windows smaller than the
		// desired resolution.
		zoom = 1
	}
	return zoom
}

// Bounds returns the projection for a viewport of viewportW x viewportH
// physical pixels at the given zoom.
//
// The virtual extent is viewport / zoom. Centered bounds start at the
// integer-floored negative half extent so integral world coordinates stay on
// the pixel grid even when the extent is odd.
func (c ProjectionConfig) Bounds(zoom float64, viewportW, viewportH uint32) Projection {
	if !(zoom > 0) {
		zoom = 1
	}
	extentW := float64(viewportW) / zoom
	extentH := float64(viewportH) / zoom

	p := Projection{Zoom: zoom, Near: c.Near, Far: c.Far}
	if c.Centered {
		p.Left = -float64(int(extentW) / 2)
		p.Right = p.Left + extentW
		p.Bottom = -float64(int(extentH) / 2)
		p.Top = p.Bottom + extentH
	} else {
		p.Right = extentW
		p.Top = extentH
	}
	return p
}

// Fit is the complete result of fitting a camera to a window.
type Fit struct {
	Projection Projection
	Viewport   ViewportRect
	Window     UVec2
}

// Fit computes the zoom, the projection bounds, and the letterboxed viewport
// for a window of windowW x windowH physical pixels. It returns false when
// either window dimension is zero, the zoom is infinite, or the viewport
// would be empty.
func (c ProjectionConfig) Fit(windowW, windowH uint32) (Fit, bool) {
	if windowW == 0 || windowH == 0 {
		return Fit{}, false
	}
	zoom := c.ZoomFor(windowW, windowH)
	if math.IsInf(zoom, 0) {
		return Fit{}, false
	}
	vp, ok := FitViewport(windowW, windowH, c.DesiredWidth, c.DesiredHeight, zoom)
	if !ok {
		return Fit{}, false
	}
	return Fit{
		Projection: c.Bounds(zoom, vp.Size.X, vp.Size.Y),
		Viewport:   vp,
		Window:     UVec2{windowW, windowH},
	}, true
}

// Projection is a pixel-aligned orthographic projection. Bounds are in
// world units (virtual pixels); Y points up.
type Projection struct {
	Zoom                     float64
	Left, Right, Bottom, Top float64
	Near, Far                float64
}

// Width returns the visible width in virtual pixels.
func (p Projection) Width() float64 {
	return p.Right - p.Left
}

// Height returns the visible height in virtual pixels.
func (p Projection) Height() float64 {
	return p.Top - p.Bottom
}

// Center returns the camera-local point at the middle of the bounds.
func (p Projection) Center() Vec2 {
	return Vec2{(p.Left + p.Right) / 2, (p.Bottom + p.Top) / 2}
}

// Matrix returns the right-handed orthographic projection matrix. Near and
// far are swapped so depth runs from 1 at the near plane to 0 at the far
// plane, for pipelines that use reversed-Z.
func (p Projection) Matrix() Mat4 {
	near, far := p.Far, p.Near
	rw := 1 / (p.Right - p.Left)
	rh := 1 / (p.Top - p.Bottom)
	r := 1 / (near - far)
	return Mat4{
		2 * rw, 0, 0, 0,
		0, 2 * rh, 0, 0,
		0, 0, r, 0,
		-(p.Left + p.Right) * rw, -(p.Top + p.Bottom) * rh, r * near, 1,
	}
}

// Project converts a camera-local point to normalized device coordinates.
func (p Projection) Project(x, y float64) (ndcX, ndcY float64) {
	ndcX = (x-p.Left)/p.Width()*2 - 1
	ndcY = (y-p.Bottom)/p.Height()*2 - 1
	return
}

// Unproject converts normalized device coordinates to a camera-local point.
func (p Projection) Unproject(ndcX, ndcY float64) (x, y float64) {
	x = p.Left + (ndcX+1)/2*p.Width()
	y = p.Bottom + (ndcY+1)/2*p.Height()
	return
}

// Fitter owns the projection state of a single camera. The stored Fit is
// replaced wholesale on every successful update and kept untouched when an
// update is rejected.
type Fitter struct {
	Config ProjectionConfig

	current Fit
	valid   bool
}

// NewFitter creates a Fitter for the given config.
func NewFitter(cfg ProjectionConfig) *Fitter {
	return &Fitter{Config: cfg}
}

// Update refits to a window of windowW x windowH physical pixels. When the
// window is degenerate the previous Fit is returned with ok == false.
func (f *Fitter) Update(windowW, windowH uint32) (fit Fit, ok bool) {
	next, ok := f.Config.Fit(windowW, windowH)
	if !ok {
		return f.current, false
	}
	f.current = next
	f.valid = true
	return next, true
}

// Current returns the last accepted Fit. ok is false until the first
// successful Update.
func (f *Fitter) Current() (fit Fit, ok bool) {
	return f.current, f.valid
}
