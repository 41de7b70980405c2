package pixelcam

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the letterboxed viewport, taken at
// the end of the current frame's Draw. The PNG is written to ScreenshotDir
// with a timestamped filename. The bars around the viewport are not
// included.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// captureRect returns the window region holding the rendered frame.
func (h *Host) captureRect() image.Rectangle {
	vp := h.frame.Camera.Viewport()
	if tex := h.frame.Texture; tex != nil {
		if layout, ok := tex.CurrentLayout(); ok {
			vp = layout.Viewport
		}
	}
	lo, hi := vp.Min(), vp.Max()
	return image.Rect(int(lo.X), int(lo.Y), int(hi.X), int(hi.Y))
}

// flushScreenshots writes every queued capture. Called at the end of Draw.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	rect := h.captureRect().Intersect(screen.Bounds())
	if rect.Empty() {
		debugf("screenshot: empty viewport, skipped %d capture(s)", len(h.screenshotQueue))
		return
	}
	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		debugf("screenshot: mkdir %s: %v", h.ScreenshotDir, err)
		return
	}

	sub := screen.SubImage(rect).(*ebiten.Image)
	w, ht := rect.Dx(), rect.Dy()
	pixels := make([]byte, 4*w*ht)
	sub.ReadPixels(pixels)
	img := unpremultiply(pixels, w, ht)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range h.screenshotQueue {
		path := fmt.Sprintf("%s/%s_%s.png", h.ScreenshotDir, stamp, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			debugf("screenshot: %v", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
