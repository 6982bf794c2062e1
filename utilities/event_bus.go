package utilities

import "sync"

// EventAssessmentCompleted fires after a submitted assessment has been scored
// and its profile stored. The payload is the model.StudentProfile value.
const EventAssessmentCompleted = "assessment_completed"

type EventHandler func(any)

// EventBus is a minimal in-process pub/sub used to decouple side effects
// (teacher alerts) from the assessment pipeline. Handlers run asynchronously;
// publishers never block on them.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

func (eb *EventBus) Publish(event string, data any) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if handlers, found := eb.handlers[event]; found {
		for _, handler := range handlers {
			go handler(data)
		}
	}
}

// Global instance
var GlobalEventBus = NewEventBus()
