package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/eventbus"
	"backoffice/internal/ui/state"
)

// DefaultToastDuration is used when no duration is configured
const DefaultToastDuration = 3 * time.Second

// ToastFor maps a domain event to the notice shown to the user
func ToastFor(event eventbus.DomainEvent) (string, state.ToastLevel, bool) {
	switch e := event.(type) {
	case eventbus.RecordDeletedEvent:
		return "Record deleted", state.ToastSuccess, true
	case eventbus.RecordsDeletedEvent:
		if len(e.IDs) == 1 {
			return "1 record deleted", state.ToastSuccess, true
		}
		return fmt.Sprintf("%d records deleted", len(e.IDs)), state.ToastSuccess, true
	case eventbus.RecordSavedEvent:
		if e.Created {
			return "Record created", state.ToastSuccess, true
		}
		return "Record updated", state.ToastSuccess, true
	case eventbus.ErrorEvent:
		if e.Err == nil {
			return e.Message, state.ToastError, true
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err), state.ToastError, true
	case eventbus.ConfigSavedEvent:
		return "Settings saved to " + e.Path, state.ToastInfo, true
	}
	return "", state.ToastInfo, false
}

// notify shows a toast and schedules its dismissal
func (m *Model) notify(message string, level state.ToastLevel) tea.Cmd {
	id := m.state.ShowToast(message, level)
	d := m.opts.ToastDuration
	if d <= 0 {
		d = DefaultToastDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
