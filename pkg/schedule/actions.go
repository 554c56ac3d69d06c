package schedule

import (
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
)

// Action is a user intent applied by Reduce
type Action interface {
	isAction()
}

// Add-event flow

// SelectSlot opens the add-event dialog seeded with the slot bounds
type SelectSlot struct {
	Start time.Time
	End   time.Time
}

// SetDraftTitle updates the typed title of the new event
type SetDraftTitle struct{ Title string }

// SetDraftStart updates the start of the new event
type SetDraftStart struct{ Start time.Time }

// SetDraftEnd updates the end of the new event
type SetDraftEnd struct{ End time.Time }

// SelectGroup picks a task group and always clears the task selection
type SelectGroup struct{ GroupID string }

// SelectTask picks a task of the selected group
type SelectTask struct{ TaskID string }

// SubmitEvent appends the drafted event. ID is the identifier the new event
// receives; Now seeds the reset draft.
type SubmitEvent struct {
	ID  string
	Now time.Time
}

// CloseAddEvent dismisses the add-event dialog without adding anything
type CloseAddEvent struct{}

// ImportEvents appends events read from elsewhere. An event whose id is
// empty or already taken, by the schedule or earlier in the batch, is
// given FreshIDs[i] instead; without one it is stored with an empty id.
type ImportEvents struct {
	Events   []models.Event
	FreshIDs []string
}

// Edit-event flow

// SelectEvent opens the edit dialog seeded with a copy of the event
type SelectEvent struct{ Event models.Event }

// SetEditTitle updates the title in the edit buffer
type SetEditTitle struct{ Title string }

// SetEditStart updates the start in the edit buffer
type SetEditStart struct{ Start time.Time }

// SetEditEnd updates the end in the edit buffer
type SetEditEnd struct{ End time.Time }

// SaveEdit writes the edit buffer back over every event with the same id
type SaveEdit struct{}

// DeleteEvent removes every event with the edit buffer's id
type DeleteEvent struct{}

// CloseEditEvent dismisses the edit dialog without touching the events
type CloseEditEvent struct{}

// New-group flow

// BeginNewGroup opens the new-group dialog with an empty draft
type BeginNewGroup struct{}

// SetGroupName updates the name of the drafted group
type SetGroupName struct{ Name string }

// SetPendingTask updates the task title being typed
type SetPendingTask struct{ Title string }

// AddTaskToDraft appends a task title to the drafted group
type AddTaskToDraft struct{ Title string }

// CommitNewGroup appends the drafted group to the catalog
type CommitNewGroup struct{}

// CloseNewGroup dismisses the new-group dialog, keeping the draft
type CloseNewGroup struct{}

// Viewport

// SetView switches the calendar granularity
type SetView struct{ View models.CalendarView }

// SetDate moves the calendar anchor date
type SetDate struct{ Date time.Time }

func (SelectSlot) isAction()     {}
func (SetDraftTitle) isAction()  {}
func (SetDraftStart) isAction()  {}
func (SetDraftEnd) isAction()    {}
func (SelectGroup) isAction()    {}
func (SelectTask) isAction()     {}
func (SubmitEvent) isAction()    {}
func (CloseAddEvent) isAction()  {}
func (ImportEvents) isAction()   {}
func (SelectEvent) isAction()    {}
func (SetEditTitle) isAction()   {}
func (SetEditStart) isAction()   {}
func (SetEditEnd) isAction()     {}
func (SaveEdit) isAction()       {}
func (DeleteEvent) isAction()    {}
func (CloseEditEvent) isAction() {}
func (BeginNewGroup) isAction()  {}
func (SetGroupName) isAction()   {}
func (SetPendingTask) isAction() {}
func (AddTaskToDraft) isAction() {}
func (CommitNewGroup) isAction() {}
func (CloseNewGroup) isAction()  {}
func (SetView) isAction()        {}
func (SetDate) isAction()        {}
