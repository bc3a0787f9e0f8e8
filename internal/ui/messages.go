package ui

import (
	"backoffice/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// toastExpiredMsg dismisses the toast with the given id
type toastExpiredMsg struct {
	id int
}
