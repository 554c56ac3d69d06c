package store

import (
	"log"
	"sync"
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
	"github.com/google/uuid"
)

// Listener is called after every dispatch with the state before and after it
type Listener func(prev, next schedule.State)

// ScheduleStore holds the current schedule state and applies actions to it
type ScheduleStore struct {
	mu sync.RWMutex

	state     schedule.State
	listeners []Listener

	now   func() time.Time
	newID func() string
}

// Option customizes a ScheduleStore
type Option func(*ScheduleStore)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *ScheduleStore) { s.now = now }
}

// WithIDGenerator replaces the UUID event id generator
func WithIDGenerator(newID func() string) Option {
	return func(s *ScheduleStore) { s.newID = newID }
}

// NewScheduleStore creates a store seeded with the default task catalog
func NewScheduleStore(view models.CalendarView, opts ...Option) *ScheduleStore {
	s := &ScheduleStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = schedule.NewState(view, s.now())
	return s
}

// Subscribe registers a listener for state changes
func (s *ScheduleStore) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// State returns the current snapshot
func (s *ScheduleStore) State() schedule.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action and notifies listeners. SubmitEvent actions
// without an id or timestamp get them filled in here, and ImportEvents
// receives one spare id per event for replacing taken ids.
func (s *ScheduleStore) Dispatch(action schedule.Action) schedule.State {
	if submit, ok := action.(schedule.SubmitEvent); ok {
		if submit.ID == "" {
			submit.ID = s.newID()
		}
		if submit.Now.IsZero() {
			submit.Now = s.now()
		}
		action = submit
	}
	if imp, ok := action.(schedule.ImportEvents); ok && len(imp.FreshIDs) < len(imp.Events) {
		imp.FreshIDs = make([]string, len(imp.Events))
		for i := range imp.FreshIDs {
			imp.FreshIDs[i] = s.newID()
		}
		action = imp
	}

	s.mu.Lock()
	prev := s.state
	next := schedule.Reduce(prev, action)
	s.state = next
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	logTransition(prev, next)

	for _, l := range listeners {
		l(prev, next)
	}
	return next
}

func logTransition(prev, next schedule.State) {
	switch {
	case len(next.Events) > len(prev.Events):
		added := next.Events[len(prev.Events):]
		for _, e := range added {
			log.Printf("[SCHEDULE] Added event \"%s\" (ID: %s, Start: %s, End: %s)",
				e.Title, e.ID, e.StartTime.Format("2006-01-02 15:04"), e.EndTime.Format("2006-01-02 15:04"))
		}
	case len(next.Events) < len(prev.Events):
		log.Printf("[SCHEDULE] Removed %d event(s)", len(prev.Events)-len(next.Events))
	}
	if len(next.Groups) > len(prev.Groups) {
		g := next.Groups[len(next.Groups)-1]
		log.Printf("[GROUP] Created group \"%s\" (ID: %d, Tasks: %d)", g.Name, g.ID, len(g.Tasks))
	}
}
