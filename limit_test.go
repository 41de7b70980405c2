package pixelcam

import (
	"math/rand/v2"
	"testing"
)

func countVisible(v []bool) int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}

func TestSpriteLimitDisabled(t *testing.T) {
	var l SpriteLimit
	if l.Enabled() {
		t.Fatal("zero SpriteLimit is enabled")
	}
	v := l.Apply(nil, 100, nil)
	if len(v) != 100 || countVisible(v) != 100 {
		t.Errorf("visible = %d of %d, want all", countVisible(v), len(v))
	}
}

func TestSpriteLimitStable(t *testing.T) {
	l := SpriteLimit{Count: 2}
	v := l.Apply(nil, 5, nil)
	want := []bool{true, true, false, false, false}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("visible = %v, want %v", v, want)
			break
		}
	}
}

func TestSpriteLimitUnderBudget(t *testing.T) {
	l := SpriteLimit{Count: DefaultSpriteLimit, Random: true}
	v := l.Apply(nil, 10, rand.New(rand.NewPCG(1, 2)))
	if countVisible(v) != 10 {
		t.Errorf("visible = %d, want 10", countVisible(v))
	}
}

func TestSpriteLimitRandom(t *testing.T) {
	l := SpriteLimit{Count: 8, Random: true}
	a := l.Apply(nil, 40, rand.New(rand.NewPCG(1, 2)))
	b := l.Apply(nil, 40, rand.New(rand.NewPCG(1, 2)))
	if countVisible(a) != 8 {
		t.Errorf("visible = %d, want 8", countVisible(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different selections")
		}
	}
}

func TestSpriteLimitRandomVaries(t *testing.T) {
	l := SpriteLimit{Count: 4, Random: true}
	rng := rand.New(rand.NewPCG(7, 7))
	first := append([]bool(nil), l.Apply(nil, 64, rng)...)
	for frame := 0; frame < 20; frame++ {
		next := l.Apply(nil, 64, rng)
		for i := range next {
			if next[i] != first[i] {
				return
			}
		}
	}
	t.Error("random limit picked the same sprites for 20 frames")
}

func TestSpriteLimitReusesBuffer(t *testing.T) {
	l := DefaultLimit()
	buf := make([]bool, 0, 64)
	v := l.Apply(buf, 50, nil)
	if &v[0] != &buf[:1][0] {
		t.Error("Apply reallocated a buffer with enough capacity")
	}
	if countVisible(v) != DefaultSpriteLimit {
		t.Errorf("visible = %d, want %d", countVisible(v), DefaultSpriteLimit)
	}
}
