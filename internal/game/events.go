package game

type EventType int

const (
	EventPaddleHit    EventType = iota // Data: side (SideLeft/SideRight)
	EventWallBounce                    // top or bottom wall
	EventBlockSpawned                  // Data: BlockKind
	EventBlockHit                      // Data: BlockKind, emitted before the effect runs
	EventScore                         // Data: side that scored
	EventCourtShrink                   // court lost one shrink step
)

type Event struct {
	Type EventType
	X, Y float64
	Data int
}

type EventHandler func(Event)

// EventBus fans simulation events out to subscribers. Handlers run
// synchronously inside Tick and must not mutate the simulation.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit is a no-op on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
