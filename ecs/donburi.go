package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/digits"
)

// SignalEventType is the Donburi event type for digits signal records.
// Events are queued; call ProcessEvents (or events.ProcessAllEvents) from a
// system to deliver them.
var SignalEventType = events.NewEventType[digits.SignalRecord]()

type donburiStore struct {
	world donburi.World
	kinds map[digits.SignalKind]bool // nil forwards every kind
}

// NewDonburiStore creates a SignalStore backed by a Donburi world. With no
// kinds every signal is forwarded; otherwise only the listed ones are.
func NewDonburiStore(world donburi.World, kinds ...digits.SignalKind) digits.SignalStore {
	s := &donburiStore{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[digits.SignalKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiStore) EmitSignal(rec digits.SignalRecord) {
	if s.kinds != nil && !s.kinds[rec.Kind] {
		return
	}
	SignalEventType.Publish(s.world, rec)
}
