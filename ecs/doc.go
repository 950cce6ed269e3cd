// Package ecs lets a Donburi world own circlebutton buttons.
//
// [Attach] stores a button on an entity as a [ButtonComponent] and points the
// button's events at the world. [UpdateButtons] is the matching system: call
// it once per frame to advance every attached button and deliver the
// transitions queued since the last frame to [ButtonEventType] subscribers,
// each tagged with the owning entity.
//
//	btn, _ := circlebutton.New(cfg)
//	_ = ecs.Attach(world, world.Create(ecs.ButtonComponent), btn)
//	ecs.ButtonEventType.Subscribe(world, onButton)
//	// per frame:
//	ecs.UpdateButtons(world, dt)
//
// [NewDonburiSink] is the event half alone, for buttons the world does not
// own.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
