// Package ecs provides [Donburi] adapters for pixelcam.
//
// Components carry pixelcam state on entities ([Camera], [Layer], [Depth],
// [Visibility], [PixelSprite], [Position], [CursorSprite]); singletons carry per-window state ([Window],
// [WorldCursor]). [Install] registers the systems that keep them in sync on
// a donburi ecs runner:
//
//	world := donburi.NewWorld()
//	e := decs.NewECS(world) // github.com/yohamta/donburi/ecs
//	pixelecs.Install(e, pixelecs.Plugins{Limit: pixelcam.DefaultLimit()})
//
// Each frame, write the physical window size and pointer into [Window]
// (see [SetWindow]) and call e.Update(). Subscribe to
// [ViewportChangedEventType] to react to refits.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
