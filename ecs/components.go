package ecs

import (
	"github.com/phanxgames/pixelcam"

	"github.com/yohamta/donburi"
)

// CameraData attaches a pixelcam.Camera to an entity.
type CameraData struct {
	Camera *pixelcam.Camera
	// Primary marks the camera the world cursor is mapped through. When no
	// camera is primary the first one found is used.
	Primary bool
}

// LayerData assigns a sprite to a depth band. UpdateLayers writes the
// resulting Z into the entity's Depth when the layer changes.
type LayerData struct {
	Layer pixelcam.Layer

	applied bool
	last    pixelcam.Layer
}

// DepthData is the draw depth of an entity. Higher Z draws on top.
type DepthData struct {
	Z float64
}

// VisibilityData is toggled by the sprite limiter.
type VisibilityData struct {
	Hidden bool
}

// PositionData is a world-space position. World space is Y-up.
type PositionData struct {
	X, Y float64
}

// WindowData is the per-frame input from the host: the physical window size
// and the current pointer sample.
type WindowData struct {
	Size    pixelcam.UVec2
	Pointer pixelcam.Pointer
}

var (
	Camera      = donburi.NewComponentType[CameraData]()
	Layer       = donburi.NewComponentType[LayerData]()
	Depth       = donburi.NewComponentType[DepthData]()
	Visibility  = donburi.NewComponentType[VisibilityData]()
	PixelSprite = donburi.NewTag()
	Position    = donburi.NewComponentType[PositionData]()

	// CursorSprite marks the entity that follows the world cursor.
	CursorSprite = donburi.NewTag()

	// Window and WorldCursor are singletons.
	Window      = donburi.NewComponentType[WindowData]()
	WorldCursor = donburi.NewComponentType[pixelcam.CursorState]()
)

// NewCameraEntity creates an entity carrying cam.
func NewCameraEntity(w donburi.World, cam *pixelcam.Camera, primary bool) *donburi.Entry {
	entry := w.Entry(w.Create(Camera))
	Camera.SetValue(entry, CameraData{Camera: cam, Primary: primary})
	return entry
}

// NewSpriteEntity creates a layered, limit-tracked sprite entity. Callers
// add their own rendering components to the returned entry.
func NewSpriteEntity(w donburi.World, layer pixelcam.Layer) *donburi.Entry {
	entry := w.Entry(w.Create(Layer, Depth, Visibility, PixelSprite))
	Layer.SetValue(entry, LayerData{Layer: layer})
	return entry
}

// NewCursorSpriteEntity creates the entity UpdateCursorSprite moves to the
// world cursor. It sits on the topmost foreground layer and stays hidden
// until the cursor position is known. It is not a PixelSprite, so the
// sprite limiter never hides it.
func NewCursorSpriteEntity(w donburi.World) *donburi.Entry {
	entry := w.Entry(w.Create(CursorSprite, Position, Layer, Depth, Visibility))
	Layer.SetValue(entry, LayerData{Layer: pixelcam.Foreground(255)})
	Visibility.SetValue(entry, VisibilityData{Hidden: true})
	return entry
}

// SetLayer changes an entity's layer. Depth follows on the next UpdateLayers.
func SetLayer(entry *donburi.Entry, layer pixelcam.Layer) {
	Layer.Get(entry).Layer = layer
}

// SetWindow stores the frame's window size and pointer, creating the
// singleton on first use.
func SetWindow(w donburi.World, size pixelcam.UVec2, pointer pixelcam.Pointer) {
	entry, ok := Window.First(w)
	if !ok {
		entry = w.Entry(w.Create(Window))
	}
	Window.SetValue(entry, WindowData{Size: size, Pointer: pointer})
}

// Cursor returns the world cursor singleton. ok is false before the first
// UpdateWorldCursor or while no position is known.
func Cursor(w donburi.World) (pixelcam.CursorState, bool) {
	entry, ok := WorldCursor.First(w)
	if !ok {
		return pixelcam.CursorState{}, false
	}
	state := *WorldCursor.Get(entry)
	return state, state.Known
}
