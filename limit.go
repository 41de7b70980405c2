package pixelcam

import "math/rand/v2"

// DefaultSpriteLimit matches the per-frame sprite budget of classic
// 16-bit hardware.
const DefaultSpriteLimit = 32

// SpriteLimit caps how many tagged sprites are visible per frame.
// A Count of 0 disables the limit.
type SpriteLimit struct {
	Count uint32 `yaml:"count"`
	// Random picks which sprites survive at random each frame instead of
	// keeping the first Count.
	Random bool `yaml:"random"`
}

// DefaultLimit returns a SpriteLimit of DefaultSpriteLimit in stable order.
func DefaultLimit() SpriteLimit {
	return SpriteLimit{Count: DefaultSpriteLimit}
}

// Enabled reports whether the limit does anything.
func (l SpriteLimit) Enabled() bool {
	return l.Count != 0
}

// Apply writes the visibility of n sprites into visible, which is resized
// to n and returned. The first Count sprites (in iteration order, or in a
// shuffled order when Random is set) are visible; the rest are hidden.
// rng may be nil, in which case the global source is used.
func (l SpriteLimit) Apply(visible []bool, n int, rng *rand.Rand) []bool {
	visible = resizeBools(visible, n)
	if !l.Enabled() {
		for i := range visible {
			visible[i] = true
		}
		return visible
	}

	if !l.Random {
		for i := range visible {
			visible[i] = uint32(i) < l.Count
		}
		return visible
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	for rank, idx := range order {
		visible[idx] = uint32(rank) < l.Count
	}
	return visible
}

func resizeBools(b []bool, n int) []bool {
	if cap(b) < n {
		return make([]bool, n)
	}
	return b[:n]
}
