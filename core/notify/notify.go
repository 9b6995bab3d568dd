// Package notify provides the synchronous department notification fan-out.
// Publishing invokes every subscriber in registration order, exactly once,
// on the publishing goroutine. There is no queue and no retry.
package notify

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hospital-billing/core/ui"
	"hospital-billing/internal/logging"
)

// Event is a published notification
type Event struct {
	// ID uniquely identifies the notification event
	ID uuid.UUID `json:"id"`

	// Message is the formatted notification text
	Message string `json:"message"`

	// At is when the event was published
	At time.Time `json:"at"`
}

// Subscriber receives published events
type Subscriber interface {
	// Name identifies the subscriber
	Name() string

	// Notify delivers an event. Must not block.
	Notify(Event)
}

// Publisher fans events out to an ordered subscriber list
type Publisher struct {
	subscribers []Subscriber
}

// NewPublisher creates a publisher with no subscribers
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscribe appends a subscriber. Delivery order follows registration order.
func (p *Publisher) Subscribe(s Subscriber) {
	p.subscribers = append(p.subscribers, s)
}

// Unsubscribe removes the first subscriber with the given name
func (p *Publisher) Unsubscribe(name string) bool {
	for i, s := range p.subscribers {
		if s.Name() == name {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered subscribers
func (p *Publisher) Count() int {
	return len(p.subscribers)
}

// Publish delivers the message to every subscriber in order.
// With zero subscribers it is a no-op.
func (p *Publisher) Publish(message string) Event {
	event := Event{
		ID:      uuid.New(),
		Message: message,
		At:      time.Now(),
	}

	for _, s := range p.subscribers {
		s.Notify(event)
	}

	logging.Debug("notification published",
		zap.String("event_id", event.ID.String()),
		zap.Int("subscribers", len(p.subscribers)))

	return event
}

// Department is a subscriber that prints notifications to the terminal
type Department struct {
	name string
	out  *ui.Writer
}

// NewDepartment creates a department subscriber
func NewDepartment(name string, out *ui.Writer) *Department {
	return &Department{name: name, out: out}
}

// Name returns the department name
func (d *Department) Name() string {
	return d.name
}

// Notify prints the notification
func (d *Department) Notify(event Event) {
	d.out.Println("[%s] %s", d.name, event.Message)
}
