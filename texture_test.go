package pixelcam

import "testing"

func TestTextureCanvasSize(t *testing.T) {
	tests := []struct {
		name string
		tex  *TextureCamera
		w, h uint32
		want UVec2
	}{
		{"fixed resolution", TextureCameraFromResolution(320, 180), 1000, 1000, UVec2{320, 180}},
		{"fixed height widescreen", TextureCameraFromHeight(180), 1920, 1080, UVec2{320, 180}},
		{"fixed height square", TextureCameraFromHeight(180), 1000, 1000, UVec2{180, 180}},
		{"fixed width", TextureCameraFromWidth(320), 1000, 500, UVec2{320, 160}},
		{"fixed width tiny window", TextureCameraFromWidth(4), 1000, 10, UVec2{4, 1}},
		{"degenerate window", TextureCameraFromHeight(180), 0, 1080, UVec2{0, 180}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tex.CanvasSize(tt.w, tt.h); got != tt.want {
				t.Errorf("CanvasSize(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestTextureLayout(t *testing.T) {
	tex := TextureCameraFromResolution(320, 180)
	layout, ok := tex.Layout(1000, 1000)
	if !ok {
		t.Fatal("Layout !ok")
	}
	if layout.Canvas != (UVec2{320, 180}) {
		t.Errorf("Canvas = %v", layout.Canvas)
	}
	if layout.Viewport.Offset != (UVec2{0, 219}) || layout.Viewport.Size != (UVec2{1000, 562}) {
		t.Errorf("Viewport = %+v", layout.Viewport)
	}
	if !approxEqual(layout.Scale.X, 3.125, epsilon) {
		t.Errorf("Scale.X = %v, want 3.125", layout.Scale.X)
	}
}

func TestTextureLayoutFillsWindowWithFixedAxis(t *testing.T) {
	tex := TextureCameraFromHeight(180)
	layout, ok := tex.Layout(1920, 1080)
	if !ok {
		t.Fatal("Layout !ok")
	}
	if layout.Viewport.Size != (UVec2{1920, 1080}) {
		t.Errorf("Viewport = %+v, want full window", layout.Viewport)
	}
	if !approxEqual(layout.Scale.X, 6, epsilon) || !approxEqual(layout.Scale.Y, 6, epsilon) {
		t.Errorf("Scale = %v, want 6x6", layout.Scale)
	}
}

func TestTextureResize(t *testing.T) {
	tex := TextureCameraFromResolution(320, 180)
	if _, ok := tex.CurrentLayout(); ok {
		t.Fatal("CurrentLayout ok before Resize")
	}
	if !tex.Resize(1920, 1080) {
		t.Error("first Resize reported no change")
	}
	if tex.Resize(1920, 1080) {
		t.Error("same-size Resize reported a change")
	}
	before, _ := tex.CurrentLayout()
	if tex.Resize(0, 1080) {
		t.Error("degenerate Resize reported a change")
	}
	if after, _ := tex.CurrentLayout(); after != before {
		t.Errorf("layout changed on degenerate resize: %+v", after)
	}
}

func TestTextureScreenToCanvas(t *testing.T) {
	tex := TextureCameraFromResolution(320, 180)
	tex.Resize(1000, 1000)

	tests := []struct {
		name   string
		x, y   float64
		cx, cy float64
	}{
		{"viewport origin", 0, 219, 0, 0},
		{"center", 500, 500, 160, 90},
		{"top bar clamps", 500, 10, 160, 0},
		{"bottom bar clamps", 1000, 1000, 320, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := tex.ScreenToCanvas(tt.x, tt.y)
			if !approxEqual(cx, tt.cx, 1e-6) || !approxEqual(cy, tt.cy, 0.2) {
				t.Errorf("ScreenToCanvas(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

func TestTextureScreenToCanvasBeforeResize(t *testing.T) {
	tex := TextureCameraFromResolution(320, 180)
	cx, cy := tex.ScreenToCanvas(12, 34)
	if cx != 12 || cy != 34 {
		t.Errorf("got (%v,%v), want passthrough (12,34)", cx, cy)
	}
}

func TestTextureDefaultClearColor(t *testing.T) {
	if TextureCameraFromWidth(100).ClearColor != ColorWhite {
		t.Error("default clear color is not white")
	}
}
