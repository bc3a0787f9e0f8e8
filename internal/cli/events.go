package cli

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"backoffice/internal/eventbus"
	"backoffice/internal/logutil"
	"backoffice/internal/ui"
)

// notified are the events the user sees as toasts
var notified = []eventbus.EventType{
	eventbus.EventRecordDeleted,
	eventbus.EventRecordsDeleted,
	eventbus.EventRecordSaved,
	eventbus.EventError,
	eventbus.EventConfigSaved,
}

var logged = []eventbus.EventType{
	eventbus.EventRecordsLoaded,
	eventbus.EventRecordDeleted,
	eventbus.EventRecordsDeleted,
	eventbus.EventRecordSaved,
	eventbus.EventNavigated,
	eventbus.EventError,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
}

// sender is the part of tea.Program the forwarder needs
type sender interface {
	Send(msg tea.Msg)
}

// forwardEvents logs every domain event and hands the notified ones to the
// program. The returned func unsubscribes and waits for the forwarder to exit.
func forwardEvents(bus eventbus.EventBus, p sender) func() {
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})
	var unsubs []func()

	for _, t := range logged {
		unsubs = append(unsubs, bus.Subscribe(t, logEvent))
	}
	for _, t := range notified {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case <-done:
			case eventChan <- e:
			default:
				logutil.L().Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
			}
		}))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, unsub := range unsubs {
				unsub()
			}
			bus.Close()
			close(done)
			wg.Wait()
		})
	}
}

func logEvent(e eventbus.DomainEvent) {
	log := logutil.L()
	switch ev := e.(type) {
	case eventbus.RecordsLoadedEvent:
		log.Info("records loaded", zap.String("feature", ev.Feature), zap.Int("count", ev.Count))
	case eventbus.RecordDeletedEvent:
		log.Info("record deleted", zap.String("feature", ev.Feature), zap.String("id", ev.ID))
	case eventbus.RecordsDeletedEvent:
		log.Info("records deleted", zap.String("feature", ev.Feature), zap.Int("count", len(ev.IDs)))
	case eventbus.RecordSavedEvent:
		log.Info("record saved", zap.String("feature", ev.Feature), zap.String("id", ev.ID), zap.Bool("created", ev.Created))
	case eventbus.NavigatedEvent:
		log.Debug("navigated", zap.String("from", ev.From), zap.String("to", ev.To))
	case eventbus.ErrorEvent:
		log.Warn(ev.Message, zap.Error(ev.Err))
	case eventbus.ConfigLoadedEvent:
		log.Info("config loaded", zap.String("path", ev.Path), zap.String("default_feature", ev.DefaultFeature), zap.Int("rows_per_page", ev.RowsPerPage))
	case eventbus.ConfigSavedEvent:
		log.Info("config saved", zap.String("path", ev.Path))
	}
}
