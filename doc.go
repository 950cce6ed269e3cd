// Package circlebutton is a hold-and-drag circular selector for 2D UIs.
//
// A [Button] is a circle anchored at the bottom-center of its area. Pressing
// inside it expands the circle from its collapse radius to its expand radius;
// dragging tilts it in pseudo-3D toward the pointer; releasing collapses it.
//
// # Quick start
//
//	cfg := circlebutton.DefaultConfig(1, 1)
//	cfg.Text = "Hold"
//	btn, err := circlebutton.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	btn.SetLayout(320, 480)
//
// Then, from the host's loop:
//
//	btn.PointerDown(x, y) // false when the press missed the circle
//	btn.PointerMove(x, y)
//	btn.PointerUp(x, y)
//	btn.Update(dt)        // advances the animation driver
//	btn.Draw(canvas)      // canvas implements [Canvas]
//
// # Animation
//
// Expand and collapse are seeded from the progress in flight, so reversing
// an animation halfway is continuous. The default [TweenDriver] runs a
// [gween] tween from 0 to 1 and feeds the eased fraction to [Button.Tick].
// Any [AnimationDriver] can replace it; every start carries a fresh
// [AnimationID] and ticks for older ids are dropped.
//
// # Backends
//
// The core never draws directly. Package ebitenbutton runs a Button inside
// an [Ebitengine] game; package ggcanvas renders frames offscreen with
// gogpu/gg; package ecs publishes button events into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package circlebutton
