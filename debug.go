package pixelcam

import (
	"fmt"
	"os"
)

// debugf prints a tagged line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[pixelcam] "+format+"\n", args...)
}

// debugFit logs a camera fit when debug mode is on.
func (h *Host) debugFit(fit Fit) {
	if !h.debug {
		return
	}
	debugf("%s", describeFit(fit))
}

// describeFit formats a fit as
// "window 1920x1080 | zoom 4 | viewport 1024x896+448+92 | bounds [-128,128]x[-112,112]".
func describeFit(fit Fit) string {
	p := fit.Projection
	vp := fit.Viewport
	return fmt.Sprintf("window %dx%d | zoom %g | viewport %dx%d+%d+%d | bounds [%g,%g]x[%g,%g]",
		fit.Window.X, fit.Window.Y, p.Zoom,
		vp.Size.X, vp.Size.Y, vp.Offset.X, vp.Offset.Y,
		p.Left, p.Right, p.Bottom, p.Top)
}
