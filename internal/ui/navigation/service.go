package navigation

import (
	"backoffice/internal/eventbus"
)

// Service keeps the route stack
type Service struct {
	stack []Route
	bus   eventbus.EventBus
}

// NewService creates a router at the dashboard
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		stack: []Route{{}},
		bus:   bus,
	}
}

// Current returns the active route
func (s *Service) Current() Route {
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of routes on the stack
func (s *Service) Depth() int {
	return len(s.stack)
}

// Push navigates to r
func (s *Service) Push(r Route) {
	from := s.Current()
	if from == r {
		return
	}
	s.stack = append(s.stack, r)
	s.publish(from, r)
}

// Replace swaps the active route for r
func (s *Service) Replace(r Route) {
	from := s.Current()
	s.stack[len(s.stack)-1] = r
	if from != r {
		s.publish(from, r)
	}
}

// Back pops the active route; the dashboard is never popped
func (s *Service) Back() (Route, bool) {
	if len(s.stack) == 1 {
		return s.Current(), false
	}
	from := s.Current()
	s.stack = s.stack[:len(s.stack)-1]
	s.publish(from, s.Current())
	return s.Current(), true
}

// Reset returns to the dashboard
func (s *Service) Reset() {
	from := s.Current()
	s.stack = s.stack[:1]
	if from != s.Current() {
		s.publish(from, s.Current())
	}
}

func (s *Service) publish(from, to Route) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.NavigatedEvent{From: from.Path(), To: to.Path()})
}
