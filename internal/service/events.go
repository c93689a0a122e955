package service

// EventType defines the type of event
type EventType string

const (
	EventRecordCreated   EventType = "record_created"
	EventRelationCreated EventType = "relation_created"
	EventRelationDeleted EventType = "relation_deleted"
)

// Event represents a change in one company's graph. CompanyID scopes
// fan-out: a subscriber only ever sees events for companies it may view.
type Event struct {
	Type      EventType   `json:"type"`
	CompanyID int64       `json:"company_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
