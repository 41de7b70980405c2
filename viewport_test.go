package pixelcam

import "testing"

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name             string
		winW, winH       uint32
		desiredW, desH   int
		zoom             float64
		wantOff, wantSiz UVec2
	}{
		{"snes on 1080p", 1920, 1080, 256, 224, 4, UVec2{448, 92}, UVec2{1024, 896}},
		{"fractional zoom", 1920, 1080, 256, 224, 4.5, UVec2{384, 36}, UVec2{1152, 1008}},
		{"height only", 800, 600, 0, 100, 3, UVec2{0, 150}, UVec2{800, 300}},
		{"width only", 800, 600, 200, 0, 2, UVec2{200, 0}, UVec2{400, 600}},
		{"unconstrained", 640, 480, 0, 0, 2, UVec2{0, 0}, UVec2{640, 480}},
		{"clamped to window", 100, 100, 256, 224, 1, UVec2{0, 0}, UVec2{100, 100}},
		{"exact fit", 1024, 896, 256, 224, 4, UVec2{0, 0}, UVec2{1024, 896}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, ok := FitViewport(tt.winW, tt.winH, tt.desiredW, tt.desH, tt.zoom)
			if !ok {
				t.Fatal("FitViewport returned !ok")
			}
			if vp.Offset != tt.wantOff || vp.Size != tt.wantSiz {
				t.Errorf("viewport = %+v, want offset %v size %v", vp, tt.wantOff, tt.wantSiz)
			}
		})
	}
}

func TestFitViewportDegenerateWindow(t *testing.T) {
	for _, win := range []UVec2{{0, 600}, {800, 0}, {0, 0}} {
		if _, ok := FitViewport(win.X, win.Y, 256, 224, 1); ok {
			t.Errorf("FitViewport(%v) ok = true, want false", win)
		}
	}
}

func TestFitViewportStaysInsideWindow(t *testing.T) {
	for w := uint32(1); w < 700; w += 37 {
		for h := uint32(1); h < 700; h += 41 {
			vp, ok := FitViewport(w, h, 160, 144, 2)
			if !ok {
				t.Fatalf("FitViewport(%d,%d) !ok", w, h)
			}
			hi := vp.Max()
			if hi.X > w || hi.Y > h {
				t.Errorf("window %dx%d: viewport %+v overflows", w, h, vp)
			}
		}
	}
}

func TestAspectViewport(t *testing.T) {
	tests := []struct {
		name              string
		winW, winH        uint32
		aspectW, aspectH  uint32
		wantOff, wantSize UVec2
	}{
		{"same aspect", 1920, 1080, 320, 180, UVec2{0, 0}, UVec2{1920, 1080}},
		{"tall window", 1000, 1000, 320, 180, UVec2{0, 219}, UVec2{1000, 562}},
		{"wide window", 1000, 500, 1, 1, UVec2{250, 0}, UVec2{500, 500}},
		{"no aspect", 640, 480, 0, 0, UVec2{0, 0}, UVec2{640, 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, ok := AspectViewport(tt.winW, tt.winH, tt.aspectW, tt.aspectH)
			if !ok {
				t.Fatal("AspectViewport returned !ok")
			}
			if vp.Offset != tt.wantOff || vp.Size != tt.wantSize {
				t.Errorf("viewport = %+v, want offset %v size %v", vp, tt.wantOff, tt.wantSize)
			}
		})
	}
}

func TestViewportRectBounds(t *testing.T) {
	vp := ViewportRect{Offset: UVec2{448, 92}, Size: UVec2{1024, 896}}
	if vp.Min() != (UVec2{448, 92}) {
		t.Errorf("Min = %v", vp.Min())
	}
	if vp.Max() != (UVec2{1472, 988}) {
		t.Errorf("Max = %v", vp.Max())
	}
	if !vp.Contains(448, 92) || vp.Contains(447, 500) {
		t.Error("Contains min edge handling wrong")
	}
	if vp.Empty() {
		t.Error("Empty = true for non-zero viewport")
	}
}

func TestViewportRectContainsMatchesMax(t *testing.T) {
	vp := ViewportRect{Offset: UVec2{448, 92}, Size: UVec2{1024, 896}}
	hi := vp.Max()
	if vp.Contains(float64(hi.X), 500) || vp.Contains(900, float64(hi.Y)) {
		t.Error("point on the exclusive Max edge reported inside")
	}
	if !vp.Contains(float64(hi.X)-0.5, float64(hi.Y)-0.5) {
		t.Error("last pixel reported outside")
	}
	if (ViewportRect{}).Contains(0, 0) {
		t.Error("empty viewport contains a point")
	}
}
