package confetti

type EventType int

const (
	EventBurst EventType = iota
	EventFullscreenChanged
	EventStateSaved
)

type Event struct {
	Type EventType
	X, Y float64
	On   bool  // fullscreen state for EventFullscreenChanged
	Err  error // save outcome for EventStateSaved
}

type EventHandler func(Event)

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

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
