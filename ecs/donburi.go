package ecs

import (
	"fmt"

	"github.com/phanxgames/circlebutton"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ButtonEvent is a button transition plus the entity whose button made it.
type ButtonEvent struct {
	Entity donburi.Entity
	circlebutton.Event
}

// ButtonEventType carries ButtonEvent values. Events wait in the world's
// queue until ProcessEvents (or UpdateButtons) runs.
var ButtonEventType = events.NewEventType[ButtonEvent]()

// ButtonData is the component value of an entity that owns a button.
type ButtonData struct {
	Button *circlebutton.Button
}

// ButtonComponent marks entities with an attached button.
var ButtonComponent = donburi.NewComponentType[ButtonData]()

var buttonQuery = donburi.NewQuery(filter.Contains(ButtonComponent))

// entitySink tags every event with its entity before queueing it.
type entitySink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink returns an EventSink that queues each event on world as a
// ButtonEvent for entity.
func NewDonburiSink(world donburi.World, entity donburi.Entity) circlebutton.EventSink {
	return &entitySink{world: world, entity: entity}
}

func (s *entitySink) Emit(event circlebutton.Event) {
	ButtonEventType.Publish(s.world, ButtonEvent{Entity: s.entity, Event: event})
}

// Attach gives entity a ButtonComponent holding btn and replaces btn's
// event sink with one that queues on world. Attaching again swaps the button.
func Attach(world donburi.World, entity donburi.Entity, btn *circlebutton.Button) error {
	if btn == nil {
		return fmt.Errorf("ecs: attach: nil button")
	}
	if !world.Valid(entity) {
		return fmt.Errorf("ecs: attach: entity %v is not alive", entity)
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(ButtonComponent) {
		entry.AddComponent(ButtonComponent)
	}
	ButtonComponent.SetValue(entry, ButtonData{Button: btn})
	btn.SetEventSink(NewDonburiSink(world, entity))
	return nil
}

// UpdateButtons advances every attached button by dt seconds, then delivers
// the queued ButtonEvents to subscribers.
func UpdateButtons(world donburi.World, dt float32) {
	buttonQuery.Each(world, func(entry *donburi.Entry) {
		if b := ButtonComponent.Get(entry).Button; b != nil {
			b.Update(dt)
		}
	})
	ButtonEventType.ProcessEvents(world)
}
