package pixelcam

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool `yaml:"show_fps"`
	// Debug prints fit changes and cursor mapping errors to stderr.
	Debug bool `yaml:"debug"`
	// HideCursor hides the OS cursor over the window. It is implied when the
	// Host has a CursorImage.
	HideCursor bool `yaml:"hide_cursor"`
}

// DefaultRunConfig returns a resizable 1280x720 window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:     "pixelcam",
		Width:     1280,
		Height:    720,
		Resizable: true,
	}
}

// Game is the user side of a Host. Update runs once per tick after the
// camera and cursor are refreshed; Draw receives the image to draw the
// world into (the canvas in texture mode, the viewport otherwise).
type Game interface {
	Update(f *Frame) error
	Draw(dst *ebiten.Image, f *Frame)
}

// Frame is the per-frame state a Host hands to the Game.
type Frame struct {
	Camera  *Camera
	Texture *TextureCamera
	Cursor  CursorState
	Limit   SpriteLimit
	// Dt is the tick length in seconds.
	Dt float32
}

// Host adapts a Camera (and optionally a TextureCamera) to ebiten.Game. It
// owns the world cursor state and refits the camera when the window changes
// size.
type Host struct {
	// OnResize is called after the camera fit changes.
	OnResize func(Fit)
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// CursorImage, when set, is drawn centered on the world cursor after the
	// game draws, as a world-space sprite snapped to the virtual pixel grid.
	CursorImage *ebiten.Image

	game    Game
	frame   Frame
	window  UVec2
	pointer pointerReader
	watcher *SettingsWatcher
	debug   bool
	showFPS bool

	injectQueue     []Pointer
	screenshotQueue []string
}

// NewHost creates a Host driving game with cam. tex may be nil for a
// scaled (direct viewport) camera.
func NewHost(game Game, cam *Camera, tex *TextureCamera) *Host {
	if tex != nil {
		cam.Mode = ModeTexture
	}
	return &Host{
		ScreenshotDir: "screenshots",
		game:          game,
		frame: Frame{
			Camera:  cam,
			Texture: tex,
		},
	}
}

// NewHostFromSettings creates a Host whose cameras and sprite limit come
// from s.
func NewHostFromSettings(game Game, s Settings) *Host {
	h := NewHost(game, s.NewCamera(), s.NewTextureCamera())
	h.frame.Limit = s.SpriteLimit
	h.debug = s.Window.Debug
	h.showFPS = s.Window.ShowFPS
	return h
}

// Frame returns the host's current frame state.
func (h *Host) Frame() *Frame {
	return &h.frame
}

// SetDebugMode enables or disables debug output on stderr.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Watch applies settings delivered by w at the start of each Update.
func (h *Host) Watch(w *SettingsWatcher) {
	h.watcher = w
}

// ApplySettings swaps in new projection and sprite-limit settings and
// refits against the current window. Window and texture mode changes need a
// restart and are ignored.
func (h *Host) ApplySettings(s Settings) {
	if h.frame.Texture == nil {
		h.frame.Camera.SetConfig(s.Projection)
	}
	h.frame.Limit = s.SpriteLimit
	if fit, ok := h.frame.Camera.Fit(); ok {
		h.debugFit(fit)
		if h.OnResize != nil {
			h.OnResize(fit)
		}
	}
}

// Layout implements ebiten.Game. The screen is sized in physical pixels so
// that the viewport math works on real device pixels.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w := int(math.Ceil(float64(outsideWidth) * scale))
	ht := int(math.Ceil(float64(outsideHeight) * scale))
	h.resize(uint32(max(w, 0)), uint32(max(ht, 0)))
	return w, ht
}

// resize refits the cameras when the physical window size changes. A zero
// dimension (minimized window) keeps the previous fit.
func (h *Host) resize(w, ht uint32) {
	next := UVec2{w, ht}
	if next == h.window {
		return
	}
	h.window = next

	cam := h.frame.Camera
	target := next
	if tex := h.frame.Texture; tex != nil {
		if !tex.Resize(w, ht) {
			return
		}
		layout, _ := tex.CurrentLayout()
		target = layout.Canvas
	}
	if cam.Resize(target.X, target.Y) {
		fit, _ := cam.Fit()
		h.debugFit(fit)
		if h.OnResize != nil {
			h.OnResize(fit)
		}
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.watcher != nil {
		if s, ok := h.watcher.Poll(); ok {
			h.ApplySettings(s)
		}
		select {
		case err, ok := <-h.watcher.Errors:
			if ok {
				log.Printf("pixelcam: settings reload: %v", err)
			}
		default:
		}
	}

	h.frame.Dt = float32(1.0 / float64(ebiten.TPS()))
	h.frame.Camera.Update(h.frame.Dt)
	h.updateCursor()
	return h.game.Update(&h.frame)
}

// updateCursor samples the pointer and maps it into world space. Without a
// pointer the last known world position is kept.
func (h *Host) updateCursor() {
	p := h.samplePointer()
	if tex := h.frame.Texture; tex != nil && p.Present {
		p.X, p.Y = tex.ScreenToCanvas(p.X, p.Y)
	}
	fit, ok := h.frame.Camera.Fit()
	if !ok {
		return
	}
	req := RequestFor(fit, h.frame.Camera.View(), h.frame.Camera.Mode)
	if err := h.frame.Cursor.Update(p, req); err != nil && h.debug {
		debugf("cursor: %v", err)
	}
}

// cursorGeoM returns the transform that draws a w x h cursor image centered
// on the world cursor. ok is false while the cursor position is unknown.
func (h *Host) cursorGeoM(w, ht int) (m ebiten.GeoM, ok bool) {
	c := h.frame.Cursor
	if !c.Known {
		return m, false
	}
	if _, fitted := h.frame.Camera.Fit(); !fitted {
		return m, false
	}
	m.Translate(-float64(w/2), -float64(ht/2))
	// Image rows run down; world Y runs up and the camera flips it back.
	m.Scale(1, -1)
	m.Translate(math.Floor(c.World.X), math.Floor(c.World.Y))
	m.Concat(h.frame.Camera.GeoM())
	return m, true
}

// drawCursor draws CursorImage onto dst at the world cursor.
func (h *Host) drawCursor(dst *ebiten.Image) {
	if h.CursorImage == nil {
		return
	}
	b := h.CursorImage.Bounds()
	m, ok := h.cursorGeoM(b.Dx(), b.Dy())
	if !ok {
		return
	}
	op := ebiten.DrawImageOptions{GeoM: m, Filter: ebiten.FilterNearest}
	dst.DrawImage(h.CursorImage, &op)
}

// hidesCursor reports whether Run hides the OS cursor.
func (h *Host) hidesCursor(cfg RunConfig) bool {
	return cfg.HideCursor || h.CursorImage != nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if tex := h.frame.Texture; tex != nil {
		canvas := tex.Begin()
		h.game.Draw(canvas, &h.frame)
		h.drawCursor(canvas)
		tex.Present(screen)
	} else {
		screen.Fill(ColorBlack.ToRGBA())
		vp := h.frame.Camera.Viewport()
		if !vp.Empty() {
			lo, hi := vp.Min(), vp.Max()
			sub := screen.SubImage(image.Rect(int(lo.X), int(lo.Y), int(hi.X), int(hi.Y))).(*ebiten.Image)
			h.game.Draw(sub, &h.frame)
			h.drawCursor(sub)
		}
	}
	h.flushScreenshots(screen)
	if h.showFPS {
		drawFPS(screen)
	}
}

// Run opens a window described by cfg and runs h until the window closes
// or the game returns an error.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultRunConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	h.debug = h.debug || cfg.Debug
	h.showFPS = h.showFPS || cfg.ShowFPS

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if h.hidesCursor(cfg) {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("pixelcam: run: %w", err)
	}
	return nil
}
