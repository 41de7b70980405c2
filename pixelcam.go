package pixelcam

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default clear color of a TextureCamera.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack fills the letterbox bars around a viewport.
var ColorBlack = Color{0, 0, 0, 1}

// ToRGBA converts c to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for world positions, cursor positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// UVec2 is an unsigned pair of physical pixel quantities (sizes and offsets).
type UVec2 struct {
	X, Y uint32
}

// Empty reports whether either component is zero.
func (u UVec2) Empty() bool {
	return u.X == 0 || u.Y == 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Axis selects one of the two screen axes.
type Axis uint8

const (
	AxisNone       Axis = iota // no axis is fixed; both follow the configured size
	AxisHorizontal             // width is fixed, height follows the window aspect
	AxisVertical               // height is fixed, width follows the window aspect
)

// Mode selects how a physical pointer position is mapped into world space.
type Mode uint8

const (
	ModeScaled  Mode = iota // camera renders straight into a letterboxed viewport
	ModeTexture             // camera renders into a virtual canvas texture
)

func (m Mode) String() string {
	switch m {
	case ModeScaled:
		return "scaled"
	case ModeTexture:
		return "texture"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
