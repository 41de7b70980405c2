package pixelcam

import "github.com/hajimehoshi/ebiten/v2"

// pointerReader samples the Ebitengine pointer. Touch wins over the mouse so
// that a tap on a device that also reports a stale cursor lands where the
// finger is.
type pointerReader struct {
	touchIDs []ebiten.TouchID
}

// read returns the current pointer in screen pixels for a screen of
// width x height. The mouse counts as present only while it is inside the
// screen; otherwise the caller keeps its last known position.
func (r *pointerReader) read(width, height int) Pointer {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(r.touchIDs[0])
		return Pointer{X: float64(tx), Y: float64(ty), Present: true}
	}

	mx, my := ebiten.CursorPosition()
	return mousePointer(mx, my, width, height)
}

// mousePointer converts a cursor sample to a Pointer, marking it absent when
// it lies outside a width x height screen.
func mousePointer(mx, my, width, height int) Pointer {
	if mx < 0 || my < 0 || mx >= width || my >= height {
		return Pointer{}
	}
	return Pointer{X: float64(mx), Y: float64(my), Present: true}
}

// ReadPointer samples the first active touch, or the mouse cursor when it
// is inside a width x height screen.
func ReadPointer(width, height int) Pointer {
	var r pointerReader
	return r.read(width, height)
}
