package models

import "time"

// Event represents a calendar entry
type Event struct {
	ID        string    // UUID assigned on creation or import, empty if unknown
	Title     string    // Event title
	StartTime time.Time // Event start time
	EndTime   time.Time // Event end time, not checked against StartTime
}

// HasID reports whether the event can be matched by id
func (e Event) HasID() bool {
	return e.ID != ""
}

// SameID reports whether two events share a non-empty id.
// Events without an id never match, not even each other.
func (e Event) SameID(other Event) bool {
	return e.HasID() && e.ID == other.ID
}

// EventDraft holds the add-event dialog input before it becomes an Event
type EventDraft struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

// NewEventDraft returns an empty draft spanning the given instant
func NewEventDraft(now time.Time) EventDraft {
	return EventDraft{StartTime: now, EndTime: now}
}
