package pixelcam

import (
	"math"
	"sort"
)

// LayerKind distinguishes the two depth bands a sprite can live in.
type LayerKind uint8

const (
	LayerBackground LayerKind = iota // drawn behind unlayered sprites (z < 0)
	LayerForeground                  // drawn in front of unlayered sprites (z >= 2)
)

// Layer places a sprite in a depth band. Order sorts sprites inside the
// band: a higher order draws on top.
type Layer struct {
	Kind  LayerKind
	Order uint8
}

// Background returns a background layer with the given order.
func Background(order uint8) Layer {
	return Layer{Kind: LayerBackground, Order: order}
}

// Foreground returns a foreground layer with the given order.
func Foreground(order uint8) Layer {
	return Layer{Kind: LayerForeground, Order: order}
}

// Depth bands. Order adds Order/1000, so a band never overlaps another.
const (
	backgroundZ = -math.MaxUint8
	foregroundZ = 2
	orderStep   = 1.0 / 1000
)

// Z returns the depth coordinate for the layer.
func (l Layer) Z() float64 {
	base := float64(foregroundZ)
	if l.Kind == LayerBackground {
		base = backgroundZ
	}
	return base + float64(l.Order)*orderStep
}

// Layered is anything that can be sorted by Layer.
type Layered interface {
	PixelLayer() Layer
}

// SortByLayer sorts items back to front by Z. Items with equal Z keep their
// relative order.
func SortByLayer[T Layered](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PixelLayer().Z() < items[j].PixelLayer().Z()
	})
}
