// Package schedule owns the schedule's events, its task catalog and the
// transient dialog state, and applies user actions to them.
//
// State is a plain value. Reduce never mutates its input: every slice it
// changes is copied first, so a State handed to a listener stays valid after
// later dispatches.
package schedule

import (
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
)

// State is a complete snapshot of one schedule
type State struct {
	Events []models.Event
	Groups []models.TaskGroup

	// Add-event dialog
	AddEventOpen  bool
	Draft         models.EventDraft
	SelectedGroup string // group id as emitted by the group select, "" when none
	SelectedTask  string // task id as emitted by the task select, "" when none

	// Edit-event dialog
	EditEventOpen bool
	Editing       *models.Event

	// New-group dialog
	NewGroupOpen bool
	GroupDraft   models.GroupDraft
	PendingTask  string

	// Calendar viewport
	View models.CalendarView
	Date time.Time
}

// NewState returns the initial state: no events, the seed catalog, and the
// viewport anchored at now.
func NewState(view models.CalendarView, now time.Time) State {
	return State{
		Events: []models.Event{},
		Groups: models.SeedTaskGroups(),
		Draft:  models.NewEventDraft(now),
		View:   view,
		Date:   now,
	}
}

// SelectedGroupTasks returns the tasks of the selected group, or nil
func (s State) SelectedGroupTasks() []models.Task {
	g, ok := FindGroup(s.Groups, s.SelectedGroup)
	if !ok {
		return nil
	}
	return g.Tasks
}
