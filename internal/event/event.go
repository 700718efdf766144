// Package event handles triggering of operations without direct dependency
package event

import (
	"context"
	"sync"

	"vclassroom/local-app/internal/log"
)

// EventType represents the type of event
type EventType int

const (
	ClassroomAdded EventType = iota
	StudentEnrolled
	AssignmentScheduled
	AssignmentSubmitted
)

func (t EventType) String() string {
	switch t {
	case ClassroomAdded:
		return "classroom_added"
	case StudentEnrolled:
		return "student_enrolled"
	case AssignmentScheduled:
		return "assignment_scheduled"
	case AssignmentSubmitted:
		return "assignment_submitted"
	default:
		return "unknown"
	}
}

// Payload names the entities touched by a registry mutation.
type Payload struct {
	Classroom string
	Student   string
	Details   string
}

// Event represents an event with its type and associated data
type Event struct {
	Type EventType
	Data Payload
}

// EventHandler is a function type for event handlers
type EventHandler func(Event)

// EventManager manages event subscriptions and publications
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	logger      *log.Logger
}

// NewEventManager creates a new EventManager instance
func NewEventManager(logger *log.Logger) *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a new event handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// SubscribeAll adds handler for every event type.
func (em *EventManager) SubscribeAll(handler EventHandler) {
	for _, t := range []EventType{ClassroomAdded, StudentEnrolled, AssignmentScheduled, AssignmentSubmitted} {
		em.Subscribe(t, handler)
	}
}

// Publish delivers an event to its handlers in subscription order on the
// caller's goroutine. A panicking handler does not stop the others.
func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	handlers := append([]EventHandler(nil), em.subscribers[event.Type]...)
	em.mu.RUnlock()

	for _, h := range handlers {
		em.deliver(h, event)
	}
}

func (em *EventManager) deliver(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			em.logger.Error(context.Background(), "Panic in event handler", log.Fields{
				"event": event.Type.String(),
				"panic": r,
			})
		}
	}()
	h(event)
}
