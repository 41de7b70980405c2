package pixelcam

// InjectPointer queues a synthetic pointer sample at the given physical
// window coordinates. Each queued sample replaces the real pointer for one
// frame, so scripted input goes through the same unprojection as the mouse.
func (h *Host) InjectPointer(x, y float64) {
	h.injectQueue = append(h.injectQueue, Pointer{X: x, Y: y, Present: true})
}

// InjectLeave queues a frame with no pointer. The world cursor keeps its
// last known position for that frame.
func (h *Host) InjectLeave() {
	h.injectQueue = append(h.injectQueue, Pointer{})
}

// InjectPath queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames samples. Minimum frames is 2 (the two end
// points).
func (h *Host) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// samplePointer pops one injected sample, or reads the real pointer when
// the queue is empty.
func (h *Host) samplePointer() Pointer {
	if len(h.injectQueue) == 0 {
		return h.pointer.read(int(h.window.X), int(h.window.Y))
	}
	p := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	return p
}
