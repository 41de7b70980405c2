// Package pixelcam is a pixel-perfect 2D camera for [Ebitengine].
//
// A pixelcam camera keeps a virtual resolution crisp on any window size. It
// picks an integer zoom (every virtual pixel covers the same whole number of
// physical pixels), letterboxes the rendered frame into a centered viewport,
// and maps the pointer back into world space through that viewport.
//
// # Quick start
//
// The simplest way to get started is [Run] with a [Host]:
//
//	cam := pixelcam.NewCamera(pixelcam.ProjectionFromResolution(256, 224, false))
//	host := pixelcam.NewHost(game, cam, nil)
//	if err := pixelcam.Run(host, pixelcam.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// The Game receives a [Frame] with the camera, the world cursor and the
// sprite limit every tick, and draws into the viewport sub-image.
//
// # Projection
//
// [ProjectionConfig] describes the virtual frame. With a desired width
// and/or height the zoom is recomputed on every resize as the largest
// integer that still fits ([ProjectionConfig.ZoomFor]); otherwise Zoom is
// fixed and rounded. AllowFractionalZoom turns off the integer snapping.
//
// A fit at 1920x1080 for a 256x224 frame:
//
//	zoom 4, viewport 1024x896 at (448, 92), bounds [-128,128]x[-112,112]
//
// World space is Y-up. Centered projections put world (0, 0) on the pixel
// closest to the middle of the viewport; odd extents keep integer world
// coordinates on the pixel grid.
//
// # Cursor
//
// [Unproject] maps a physical pointer position into the world. Positions in
// the letterbox bars are clamped to the viewport edge. [CursorState] keeps
// the last known world position while no pointer is present.
//
// # Texture camera
//
// A [TextureCamera] renders the world into an offscreen canvas of virtual
// pixels and scales the canvas into the window with nearest-neighbor
// filtering. Sub-pixel movement is impossible by construction. With a
// fixed axis ([AxisHorizontal] or [AxisVertical]) only that canvas
// dimension is fixed and the other follows the window aspect ratio.
//
// # Layers and sprite limits
//
// [Layer] places a sprite in a background or foreground depth band.
// [SpriteLimit] hides sprites beyond a per-frame budget, like the sprite
// flicker of 16-bit consoles.
//
// # Settings
//
// [LoadSettings] reads a YAML file describing the window, projection,
// texture camera and sprite limit. [WatchSettings] reloads it on change;
// hand the watcher to [Host.Watch] to apply edits live.
//
// # ECS
//
// The ecs sub-package wires cameras, layers, the sprite limiter and the
// world cursor into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package pixelcam
