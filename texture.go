package pixelcam

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureCamera renders the world into an offscreen canvas of virtual
// pixels, then scales the canvas into a letterboxed viewport. Everything
// drawn to the canvas is pixelated, at the cost of whole-pixel scrolling.
type TextureCamera struct {
	// Size is the virtual canvas size. With a FixedAxis only that axis of
	// Size is used; the other follows the window aspect ratio.
	Size       UVec2
	FixedAxis  Axis
	ClearColor Color

	canvas *ebiten.Image
	layout TextureLayout
	valid  bool
}

// TextureLayout is where a TextureCamera's canvas lands in the window.
type TextureLayout struct {
	Canvas   UVec2
	Viewport ViewportRect
	// Scale is viewport size / canvas size per axis.
	Scale Vec2
}

// NewTextureCamera creates a TextureCamera with an explicit canvas size,
// fixed axis and clear color.
func NewTextureCamera(size UVec2, axis Axis, bg Color) *TextureCamera {
	return &TextureCamera{Size: size, FixedAxis: axis, ClearColor: bg}
}

// TextureCameraFromResolution creates a TextureCamera with a fixed
// width x height canvas.
func TextureCameraFromResolution(width, height uint32) *TextureCamera {
	return NewTextureCamera(UVec2{width, height}, AxisNone, ColorWhite)
}

// TextureCameraFromWidth creates a TextureCamera whose canvas is always
// width pixels wide.
func TextureCameraFromWidth(width uint32) *TextureCamera {
	return NewTextureCamera(UVec2{width, 0}, AxisHorizontal, ColorWhite)
}

// TextureCameraFromHeight creates a TextureCamera whose canvas is always
// height pixels tall.
func TextureCameraFromHeight(height uint32) *TextureCamera {
	return NewTextureCamera(UVec2{0, height}, AxisVertical, ColorWhite)
}

// CanvasSize returns the canvas size for a window of windowW x windowH.
func (t *TextureCamera) CanvasSize(windowW, windowH uint32) UVec2 {
	if windowW == 0 || windowH == 0 {
		return t.Size
	}
	switch t.FixedAxis {
	case AxisHorizontal:
		h := math.Round(float64(t.Size.X) * float64(windowH) / float64(windowW))
		return UVec2{t.Size.X, uint32(math.Max(h, 1))}
	case AxisVertical:
		w := math.Round(float64(t.Size.Y) * float64(windowW) / float64(windowH))
		return UVec2{uint32(math.Max(w, 1)), t.Size.Y}
	default:
		return t.Size
	}
}

// Layout computes the letterboxed placement of the canvas in a window of
// windowW x windowH. It returns false for a degenerate window or canvas.
func (t *TextureCamera) Layout(windowW, windowH uint32) (TextureLayout, bool) {
	canvas := t.CanvasSize(windowW, windowH)
	if canvas.Empty() {
		return TextureLayout{}, false
	}
	vp, ok := AspectViewport(windowW, windowH, canvas.X, canvas.Y)
	if !ok {
		return TextureLayout{}, false
	}
	return TextureLayout{
		Canvas:   canvas,
		Viewport: vp,
		Scale: Vec2{
			X: float64(vp.Size.X) / float64(canvas.X),
			Y: float64(vp.Size.Y) / float64(canvas.Y),
		},
	}, true
}

// Resize recomputes the layout for a new window size. The canvas image is
// reallocated lazily on the next Canvas call when its size changed. It
// reports whether the layout changed; a degenerate window keeps the old one.
func (t *TextureCamera) Resize(windowW, windowH uint32) bool {
	next, ok := t.Layout(windowW, windowH)
	if !ok {
		return false
	}
	changed := !t.valid || next != t.layout
	t.layout = next
	t.valid = true
	return changed
}

// CurrentLayout returns the last accepted layout.
func (t *TextureCamera) CurrentLayout() (TextureLayout, bool) {
	return t.layout, t.valid
}

// Canvas returns the offscreen canvas, allocating it on first use and after
// a canvas size change.
func (t *TextureCamera) Canvas() *ebiten.Image {
	size := t.layout.Canvas
	if !t.valid {
		size = t.Size
	}
	if size.Empty() {
		size = UVec2{1, 1}
	}
	if t.canvas != nil {
		b := t.canvas.Bounds()
		if b.Dx() == int(size.X) && b.Dy() == int(size.Y) {
			return t.canvas
		}
		t.canvas.Deallocate()
	}
	t.canvas = ebiten.NewImage(int(size.X), int(size.Y))
	return t.canvas
}

// Begin clears the canvas to ClearColor and returns it for drawing.
func (t *TextureCamera) Begin() *ebiten.Image {
	c := t.Canvas()
	c.Fill(t.ClearColor.ToRGBA())
	return c
}

// Present fills screen black and draws the canvas into the letterboxed
// viewport with nearest-neighbor filtering.
func (t *TextureCamera) Present(screen *ebiten.Image) {
	screen.Fill(ColorBlack.ToRGBA())
	if !t.valid || t.canvas == nil {
		return
	}
	var op ebiten.DrawImageOptions
	t.PresentGeoM(&op.GeoM)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(t.canvas, &op)
}

// PresentGeoM writes the canvas-to-window transform into m.
func (t *TextureCamera) PresentGeoM(m *ebiten.GeoM) {
	m.Reset()
	m.Scale(t.layout.Scale.X, t.layout.Scale.Y)
	m.Translate(float64(t.layout.Viewport.Offset.X), float64(t.layout.Viewport.Offset.Y))
}

// ScreenToCanvas maps a physical window point into canvas pixels. Points in
// the letterbox bars are clamped to the canvas edge.
func (t *TextureCamera) ScreenToCanvas(x, y float64) (cx, cy float64) {
	if !t.valid || t.layout.Scale.X == 0 || t.layout.Scale.Y == 0 {
		return x, y
	}
	vp := t.layout.Viewport
	cx = (x - float64(vp.Offset.X)) / t.layout.Scale.X
	cy = (y - float64(vp.Offset.Y)) / t.layout.Scale.Y
	cx = clamp(cx, 0, float64(t.layout.Canvas.X))
	cy = clamp(cy, 0, float64(t.layout.Canvas.Y))
	return
}

// Dispose deallocates the canvas image. The camera allocates a new one if
// Canvas is called again.
func (t *TextureCamera) Dispose() {
	if t.canvas != nil {
		t.canvas.Deallocate()
		t.canvas = nil
	}
}
