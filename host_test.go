package pixelcam

import "testing"

func TestHostResizeFitsCamera(t *testing.T) {
	cam := NewCamera(ProjectionFromResolution(256, 224, false))
	h := NewHost(nil, cam, nil)

	var fits []Fit
	h.OnResize = func(f Fit) { fits = append(fits, f) }

	h.resize(1920, 1080)
	h.resize(1920, 1080)
	if len(fits) != 1 {
		t.Fatalf("OnResize called %d times, want 1", len(fits))
	}
	if fits[0].Projection.Zoom != 4 {
		t.Errorf("zoom = %v, want 4", fits[0].Projection.Zoom)
	}

	h.resize(0, 1080)
	if len(fits) != 1 {
		t.Error("OnResize called for a minimized window")
	}
	if cam.Viewport().Size != (UVec2{1024, 896}) {
		t.Errorf("viewport = %+v, want previous fit kept", cam.Viewport())
	}
}

func TestHostInjectedCursor(t *testing.T) {
	h := NewHost(nil, NewCamera(ProjectionFromResolution(256, 224, false)), nil)
	h.resize(1920, 1080)

	h.InjectPointer(964, 540)
	h.InjectLeave()

	h.updateCursor()
	c := h.Frame().Cursor
	if !c.Known || !approxEqual(c.World.X, 1, epsilon) || !approxEqual(c.World.Y, 0, epsilon) {
		t.Fatalf("cursor = %+v, want known at (1,0)", c)
	}

	h.updateCursor()
	if h.Frame().Cursor != c {
		t.Errorf("cursor after leave = %+v, want %+v", h.Frame().Cursor, c)
	}
	if len(h.injectQueue) != 0 {
		t.Errorf("inject queue len = %d, want 0", len(h.injectQueue))
	}
}

func TestHostTextureCursor(t *testing.T) {
	tex := TextureCameraFromResolution(320, 180)
	h := NewHost(nil, NewCamera(ProjectionFromZoom(1)), tex)
	if h.Frame().Camera.Mode != ModeTexture {
		t.Fatalf("Mode = %v, want texture", h.Frame().Camera.Mode)
	}
	h.resize(1920, 1080)

	fit, ok := h.Frame().Camera.Fit()
	if !ok || fit.Window != (UVec2{320, 180}) {
		t.Fatalf("camera fit window = %v, want the 320x180 canvas", fit.Window)
	}

	h.InjectPointer(960, 540)
	h.updateCursor()
	c := h.Frame().Cursor.World
	if !approxEqual(c.X, 0, epsilon) || !approxEqual(c.Y, 0, epsilon) {
		t.Errorf("center = %v, want (0,0)", c)
	}

	h.InjectPointer(0, 0)
	h.updateCursor()
	c = h.Frame().Cursor.World
	if !approxEqual(c.X, -160, epsilon) || !approxEqual(c.Y, 90, epsilon) {
		t.Errorf("top-left = %v, want (-160,90)", c)
	}
}

func TestHostInjectPath(t *testing.T) {
	h := NewHost(nil, NewCamera(DefaultProjectionConfig()), nil)
	h.InjectPath(0, 0, 30, 60, 4)
	want := []Pointer{
		{X: 0, Y: 0, Present: true},
		{X: 10, Y: 20, Present: true},
		{X: 20, Y: 40, Present: true},
		{X: 30, Y: 60, Present: true},
	}
	if len(h.injectQueue) != len(want) {
		t.Fatalf("queue len = %d, want %d", len(h.injectQueue), len(want))
	}
	for i, p := range want {
		got := h.samplePointer()
		if !approxEqual(got.X, p.X, epsilon) || !approxEqual(got.Y, p.Y, epsilon) || got.Present != p.Present {
			t.Errorf("sample %d = %+v, want %+v", i, got, p)
		}
	}
}

func TestHostCaptureRect(t *testing.T) {
	h := NewHost(nil, NewCamera(ProjectionFromResolution(256, 224, false)), nil)
	h.resize(1920, 1080)
	r := h.captureRect()
	if r.Min.X != 448 || r.Min.Y != 92 || r.Dx() != 1024 || r.Dy() != 896 {
		t.Errorf("captureRect = %v", r)
	}

	h.Screenshot("a")
	h.Screenshot("b")
	if len(h.screenshotQueue) != 2 || h.ScreenshotDir != "screenshots" {
		t.Errorf("queue = %v dir = %q", h.screenshotQueue, h.ScreenshotDir)
	}
}

func TestHostApplySettings(t *testing.T) {
	h := NewHost(nil, NewCamera(ProjectionFromResolution(256, 224, false)), nil)
	h.resize(1920, 1080)

	var got Fit
	h.OnResize = func(f Fit) { got = f }

	s := DefaultSettings()
	s.Projection = ProjectionFromResolution(320, 180, false)
	s.SpriteLimit = DefaultLimit()
	h.ApplySettings(s)

	if got.Projection.Zoom != 6 {
		t.Errorf("zoom after apply = %v, want 6", got.Projection.Zoom)
	}
	if h.Frame().Limit != DefaultLimit() {
		t.Errorf("limit = %+v", h.Frame().Limit)
	}
}

func TestHostCursorGeoM(t *testing.T) {
	h := NewHost(nil, NewCamera(ProjectionFromResolution(256, 224, false)), nil)
	h.resize(1920, 1080)

	if _, ok := h.cursorGeoM(8, 8); ok {
		t.Fatal("cursorGeoM ok before the cursor is known")
	}

	h.InjectPointer(964, 540)
	h.updateCursor()
	m, ok := h.cursorGeoM(8, 8)
	if !ok {
		t.Fatal("cursorGeoM !ok with a known cursor")
	}

	// An 8x8 image centered on world (1,0) at zoom 4, Y-up.
	x, y := m.Apply(0, 0)
	if !approxEqual(x, 948, 1e-6) || !approxEqual(y, 524, 1e-6) {
		t.Errorf("image top-left = (%v,%v), want (948,524)", x, y)
	}
	x, y = m.Apply(8, 8)
	if !approxEqual(x, 980, 1e-6) || !approxEqual(y, 556, 1e-6) {
		t.Errorf("image bottom-right = (%v,%v), want (980,556)", x, y)
	}
}

func TestHostCursorGeoMSnapsToPixelGrid(t *testing.T) {
	h := NewHost(nil, NewCamera(ProjectionFromResolution(256, 224, false)), nil)
	h.resize(1920, 1080)

	// 962 is half a virtual pixel right of the center.
	h.InjectPointer(962, 540)
	h.updateCursor()
	m, _ := h.cursorGeoM(2, 2)
	x, _ := m.Apply(0, 0)
	if !approxEqual(x, 956, 1e-6) {
		t.Errorf("image left = %v, want 956 (snapped to world x 0)", x)
	}
}

func TestHostHidesCursor(t *testing.T) {
	h := NewHost(nil, NewCamera(DefaultProjectionConfig()), nil)
	if h.hidesCursor(RunConfig{}) {
		t.Error("cursor hidden with no option and no image")
	}
	if !h.hidesCursor(RunConfig{HideCursor: true}) {
		t.Error("HideCursor did not hide the cursor")
	}

	s, err := ParseSettings([]byte("window:\n  hide_cursor: true\n"))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if !h.hidesCursor(s.Window) {
		t.Error("hide_cursor from settings did not hide the cursor")
	}
}
