package ecs

import (
	"log"
	"math/rand/v2"

	"github.com/phanxgames/pixelcam"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// ViewportChanged is published when a camera entity is refitted.
type ViewportChanged struct {
	Entity donburi.Entity
	Fit    pixelcam.Fit
}

// ViewportChangedEventType is the Donburi event type for camera refits.
// Events are queued; call ProcessEvents to deliver them.
var ViewportChangedEventType = events.NewEventType[ViewportChanged]()

var (
	cameraQuery = query.NewQuery(filter.Contains(Camera))
	layerQuery  = query.NewQuery(filter.Contains(Layer, Depth))
	spriteQuery = query.NewQuery(filter.Contains(PixelSprite, Visibility))
	cursorQuery = query.NewQuery(filter.Contains(CursorSprite, Position))
)

// UpdateCameras refits every camera entity to the Window singleton and
// publishes ViewportChanged for each camera whose fit changed. Without a
// Window, or with a zero-size window, cameras keep their previous fit.
func UpdateCameras(w donburi.World) {
	win, ok := Window.First(w)
	if !ok {
		return
	}
	size := Window.Get(win).Size
	var changed []ViewportChanged
	cameraQuery.Each(w, func(entry *donburi.Entry) {
		cam := Camera.Get(entry).Camera
		if cam == nil {
			return
		}
		if cam.Resize(size.X, size.Y) {
			fit, _ := cam.Fit()
			changed = append(changed, ViewportChanged{Entity: entry.Entity(), Fit: fit})
		}
	})
	// Publishing may create the event storage entity, so it happens after
	// the query finishes.
	for _, ev := range changed {
		ViewportChangedEventType.Publish(w, ev)
	}
}

// UpdateLayers writes Depth.Z for every entity whose Layer changed since the
// last call.
func UpdateLayers(w donburi.World) {
	layerQuery.Each(w, func(entry *donburi.Entry) {
		l := Layer.Get(entry)
		if l.applied && l.last == l.Layer {
			return
		}
		Depth.Get(entry).Z = l.Layer.Z()
		l.last = l.Layer
		l.applied = true
	})
}

// SpriteLimiter hides PixelSprite entities beyond a per-frame budget.
type SpriteLimiter struct {
	Limit pixelcam.SpriteLimit

	rng     *rand.Rand
	entries []*donburi.Entry
	visible []bool
}

// NewSpriteLimiter creates a limiter. rng may be nil to use the global
// random source in random mode.
func NewSpriteLimiter(limit pixelcam.SpriteLimit, rng *rand.Rand) *SpriteLimiter {
	return &SpriteLimiter{Limit: limit, rng: rng}
}

// Update applies the limit to every PixelSprite entity.
func (l *SpriteLimiter) Update(w donburi.World) {
	l.entries = l.entries[:0]
	spriteQuery.Each(w, func(entry *donburi.Entry) {
		l.entries = append(l.entries, entry)
	})
	l.visible = l.Limit.Apply(l.visible, len(l.entries), l.rng)
	for i, entry := range l.entries {
		Visibility.Get(entry).Hidden = !l.visible[i]
	}
	clear(l.entries)
}

// primaryCamera returns the primary camera, or the first camera when none
// is marked primary.
func primaryCamera(w donburi.World) *pixelcam.Camera {
	var first, primary *pixelcam.Camera
	cameraQuery.Each(w, func(entry *donburi.Entry) {
		data := Camera.Get(entry)
		if data.Camera == nil {
			return
		}
		if first == nil {
			first = data.Camera
		}
		if data.Primary && primary == nil {
			primary = data.Camera
		}
	})
	if primary != nil {
		return primary
	}
	return first
}

// UpdateWorldCursor maps the Window pointer through the primary camera into
// the WorldCursor singleton. Without a pointer the last known position is
// kept.
func UpdateWorldCursor(w donburi.World) {
	win, ok := Window.First(w)
	if !ok {
		return
	}
	cam := primaryCamera(w)
	if cam == nil {
		return
	}
	fit, ok := cam.Fit()
	if !ok {
		return
	}

	entry, ok := WorldCursor.First(w)
	if !ok {
		entry = w.Entry(w.Create(WorldCursor))
	}
	state := WorldCursor.Get(entry)
	req := pixelcam.RequestFor(fit, cam.View(), cam.Mode)
	if err := state.Update(Window.Get(win).Pointer, req); err != nil {
		log.Printf("pixelcam/ecs: world cursor: %v", err)
	}
}

// UpdateCursorSprite moves every CursorSprite entity to the world cursor.
// Entities with Visibility stay hidden while the cursor position is unknown.
func UpdateCursorSprite(w donburi.World) {
	state, known := Cursor(w)
	cursorQuery.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(Visibility) {
			Visibility.Get(entry).Hidden = !known
		}
		if !known {
			return
		}
		Position.SetValue(entry, PositionData{X: state.World.X, Y: state.World.Y})
	})
}

// Plugins selects which systems Install registers.
type Plugins struct {
	// Limit enables the sprite limiter when Limit.Count is non-zero.
	Limit pixelcam.SpriteLimit
	// Rand seeds the limiter's random mode. Nil uses the global source.
	Rand *rand.Rand
}

// Install registers the pixelcam systems on e in dependency order: camera
// refit, layers, sprite limit, world cursor, cursor sprite.
func Install(e *decs.ECS, p Plugins) *decs.ECS {
	e.AddSystem(func(e *decs.ECS) { UpdateCameras(e.World) })
	e.AddSystem(func(e *decs.ECS) { UpdateLayers(e.World) })
	if p.Limit.Enabled() {
		limiter := NewSpriteLimiter(p.Limit, p.Rand)
		e.AddSystem(func(e *decs.ECS) { limiter.Update(e.World) })
	}
	e.AddSystem(func(e *decs.ECS) { UpdateWorldCursor(e.World) })
	e.AddSystem(func(e *decs.ECS) { UpdateCursorSprite(e.World) })
	return e
}
