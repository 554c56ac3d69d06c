package schedule

import (
	"slices"

	"github.com/borgmon/schedule-manager/pkg/models"
)

// Reduce applies an action to s and returns the next state. It is total:
// unknown actions and actions that do not apply return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SelectSlot:
		s.Draft = models.EventDraft{StartTime: a.Start, EndTime: a.End}
		s.SelectedGroup = ""
		s.SelectedTask = ""
		s.AddEventOpen = true
	case SetDraftTitle:
		s.Draft.Title = a.Title
	case SetDraftStart:
		s.Draft.StartTime = a.Start
	case SetDraftEnd:
		s.Draft.EndTime = a.End
	case SelectGroup:
		s.SelectedGroup = a.GroupID
		s.SelectedTask = ""
	case SelectTask:
		s.SelectedTask = a.TaskID
	case SubmitEvent:
		return submitEvent(s, a)
	case CloseAddEvent:
		s.AddEventOpen = false
		s.SelectedGroup = ""
		s.SelectedTask = ""
	case ImportEvents:
		if len(a.Events) > 0 {
			s.Events = importEvents(s.Events, a)
		}

	case SelectEvent:
		editing := a.Event
		s.Editing = &editing
		s.EditEventOpen = true
	case SetEditTitle:
		s.Editing = editBuffer(s.Editing, func(e *models.Event) { e.Title = a.Title })
	case SetEditStart:
		s.Editing = editBuffer(s.Editing, func(e *models.Event) { e.StartTime = a.Start })
	case SetEditEnd:
		s.Editing = editBuffer(s.Editing, func(e *models.Event) { e.EndTime = a.End })
	case SaveEdit:
		if s.Editing != nil {
			s.Events = replaceByID(s.Events, *s.Editing)
		}
		s.EditEventOpen = false
		s.Editing = nil
	case DeleteEvent:
		if s.Editing != nil {
			s.Events = removeByID(s.Events, *s.Editing)
		}
		s.EditEventOpen = false
		s.Editing = nil
	case CloseEditEvent:
		s.EditEventOpen = false
		s.Editing = nil

	case BeginNewGroup:
		s.GroupDraft = models.GroupDraft{Tasks: []string{}}
		s.PendingTask = ""
		s.NewGroupOpen = true
	case SetGroupName:
		s.GroupDraft.Name = a.Name
	case SetPendingTask:
		s.PendingTask = a.Title
	case AddTaskToDraft:
		if a.Title == "" {
			return s
		}
		s.GroupDraft.Tasks = append(slices.Clip(s.GroupDraft.Tasks), a.Title)
		s.PendingTask = ""
	case CommitNewGroup:
		return commitNewGroup(s)
	case CloseNewGroup:
		s.NewGroupOpen = false

	case SetView:
		s.View = a.View
	case SetDate:
		s.Date = a.Date
	}
	return s
}

func submitEvent(s State, a SubmitEvent) State {
	event := models.Event{
		ID:        a.ID,
		Title:     resolveTitle(s),
		StartTime: s.Draft.StartTime,
		EndTime:   s.Draft.EndTime,
	}
	s.Events = append(slices.Clip(s.Events), event)
	s.AddEventOpen = false
	s.Draft = models.NewEventDraft(a.Now)
	s.SelectedGroup = ""
	s.SelectedTask = ""
	return s
}

func commitNewGroup(s State) State {
	if !s.GroupDraft.Valid() {
		return s
	}
	group := models.NewTaskGroup(models.NextGroupID(s.Groups), s.GroupDraft.Name, s.GroupDraft.Tasks)
	s.Groups = append(slices.Clip(s.Groups), group)
	s.GroupDraft = models.GroupDraft{Tasks: []string{}}
	s.PendingTask = ""
	s.NewGroupOpen = false
	return s
}

func importEvents(events []models.Event, a ImportEvents) []models.Event {
	taken := make(map[string]bool, len(events)+len(a.Events))
	for _, e := range events {
		if e.HasID() {
			taken[e.ID] = true
		}
	}

	next := slices.Clip(events)
	for i, e := range a.Events {
		if !e.HasID() || taken[e.ID] {
			e.ID = ""
			if i < len(a.FreshIDs) && a.FreshIDs[i] != "" && !taken[a.FreshIDs[i]] {
				e.ID = a.FreshIDs[i]
			}
		}
		if e.HasID() {
			taken[e.ID] = true
		}
		next = append(next, e)
	}
	return next
}

// editBuffer returns a modified copy of the buffer, or nil when nothing is
// being edited
func editBuffer(e *models.Event, edit func(*models.Event)) *models.Event {
	if e == nil {
		return nil
	}
	next := *e
	edit(&next)
	return &next
}

func replaceByID(events []models.Event, edited models.Event) []models.Event {
	next := make([]models.Event, len(events))
	for i, e := range events {
		if e.SameID(edited) {
			next[i] = edited
		} else {
			next[i] = e
		}
	}
	return next
}

func removeByID(events []models.Event, target models.Event) []models.Event {
	next := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.SameID(target) {
			next = append(next, e)
		}
	}
	return next
}
