package schedule

import (
	"testing"
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestNewState_SeedCatalog(t *testing.T) {
	s := NewState(models.ViewMonth, testNow)

	assert.Empty(t, s.Events)
	require.Len(t, s.Groups, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{s.Groups[0].ID, s.Groups[1].ID, s.Groups[2].ID})
	assert.Equal(t, models.ViewMonth, s.View)
	assert.Equal(t, testNow, s.Date)
	assert.False(t, s.AddEventOpen)
	assert.False(t, s.EditEventOpen)
	assert.False(t, s.NewGroupOpen)
}

func TestSubmitEvent_SlotAndTaskScenario(t *testing.T) {
	s := NewState(models.ViewMonth, testNow)

	s = Reduce(s, SelectSlot{Start: at(9, 0), End: at(10, 0)})
	require.True(t, s.AddEventOpen)

	s = apply(s, SelectGroup{GroupID: "2"}, SelectTask{TaskID: "201"})
	s = Reduce(s, SubmitEvent{ID: "ev-1", Now: testNow})

	require.Len(t, s.Events, 1)
	assert.Equal(t, models.Event{
		ID:        "ev-1",
		Title:     "Gọi điện cho khách hàng",
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
	}, s.Events[0])
	assert.False(t, s.AddEventOpen)
	assert.Empty(t, s.SelectedGroup)
	assert.Empty(t, s.SelectedTask)
	assert.Equal(t, models.EventDraft{StartTime: testNow, EndTime: testNow}, s.Draft)
}

func TestSubmitEvent_TaskTitleOverridesDraft(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SetDraftTitle{Title: "typed"},
		SelectGroup{GroupID: "1"},
		SelectTask{TaskID: "101"},
		SubmitEvent{ID: "a", Now: testNow},
	)

	require.Len(t, s.Events, 1)
	assert.Equal(t, "Họp nhóm", s.Events[0].Title)
}

func TestSubmitEvent_DraftTitleWithoutSelection(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SetDraftTitle{Title: "Dentist"},
		SubmitEvent{ID: "a", Now: testNow},
	)
	require.Len(t, s.Events, 1)
	assert.Equal(t, "Dentist", s.Events[0].Title)

	s = apply(s,
		SelectSlot{Start: at(11, 0), End: at(12, 0)},
		SubmitEvent{ID: "b", Now: testNow},
	)
	require.Len(t, s.Events, 2)
	assert.Equal(t, "", s.Events[1].Title)
}

func TestSubmitEvent_LookupMissFallsBackToDraftTitle(t *testing.T) {
	tests := []struct {
		name    string
		groupID string
		taskID  string
	}{
		{"unknown group", "42", "101"},
		{"task from another group", "1", "201"},
		{"unknown task", "1", "199"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := apply(NewState(models.ViewMonth, testNow),
				SelectSlot{Start: at(9, 0), End: at(10, 0)},
				SetDraftTitle{Title: "fallback"},
				SelectGroup{GroupID: tt.groupID},
				SelectTask{TaskID: tt.taskID},
				SubmitEvent{ID: "a", Now: testNow},
			)
			require.Len(t, s.Events, 1)
			assert.Equal(t, "fallback", s.Events[0].Title)
		})
	}
}

func TestSubmitEvent_EndBeforeStartAccepted(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SetDraftStart{Start: at(15, 0)},
		SetDraftEnd{End: at(14, 0)},
		SubmitEvent{ID: "a", Now: testNow},
	)

	require.Len(t, s.Events, 1)
	assert.Equal(t, at(15, 0), s.Events[0].StartTime)
	assert.Equal(t, at(14, 0), s.Events[0].EndTime)
}

func TestSelectGroup_ClearsTask(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SelectGroup{GroupID: "1"},
		SelectTask{TaskID: "102"},
		SelectGroup{GroupID: "3"},
	)

	assert.Equal(t, "3", s.SelectedGroup)
	assert.Empty(t, s.SelectedTask)
	assert.Len(t, s.SelectedGroupTasks(), 3)
}

func TestSelectSlot_ResetsDraftAndSelection(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SetDraftTitle{Title: "half typed"},
		SelectGroup{GroupID: "1"},
		SelectTask{TaskID: "101"},
		SelectSlot{Start: at(13, 0), End: at(14, 0)},
	)

	assert.Equal(t, models.EventDraft{StartTime: at(13, 0), EndTime: at(14, 0)}, s.Draft)
	assert.Empty(t, s.SelectedGroup)
	assert.Empty(t, s.SelectedTask)
}

func TestCloseAddEvent_LeavesEventsUntouched(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SelectGroup{GroupID: "1"},
		CloseAddEvent{},
	)

	assert.Empty(t, s.Events)
	assert.False(t, s.AddEventOpen)
	assert.Empty(t, s.SelectedGroup)
}

func seeded(events ...models.Event) State {
	s := NewState(models.ViewMonth, testNow)
	s.Events = events
	return s
}

func TestSaveEdit_ReplacesMatchingID(t *testing.T) {
	s := seeded(
		models.Event{ID: "a", Title: "A", StartTime: at(9, 0), EndTime: at(10, 0)},
		models.Event{ID: "b", Title: "B", StartTime: at(11, 0), EndTime: at(12, 0)},
	)

	s = Reduce(s, SelectEvent{Event: s.Events[1]})
	require.True(t, s.EditEventOpen)
	require.NotNil(t, s.Editing)

	s = apply(s,
		SetEditTitle{Title: "B2"},
		SetEditStart{Start: at(13, 0)},
		SetEditEnd{End: at(14, 0)},
		SaveEdit{},
	)

	assert.Equal(t, []models.Event{
		{ID: "a", Title: "A", StartTime: at(9, 0), EndTime: at(10, 0)},
		{ID: "b", Title: "B2", StartTime: at(13, 0), EndTime: at(14, 0)},
	}, s.Events)
	assert.False(t, s.EditEventOpen)
	assert.Nil(t, s.Editing)
}

func TestSaveEdit_NoMatchIsNoop(t *testing.T) {
	original := []models.Event{{ID: "a", Title: "A"}}
	s := apply(seeded(original...),
		SelectEvent{Event: models.Event{ID: "zzz", Title: "ghost"}},
		SaveEdit{},
	)
	assert.Equal(t, original, s.Events)
}

func TestDeleteEvent_RemovesOnlyMatchingID(t *testing.T) {
	s := seeded(
		models.Event{ID: "a", Title: "A"},
		models.Event{ID: "b", Title: "B"},
		models.Event{ID: "c", Title: "C"},
	)

	s = apply(s, SelectEvent{Event: s.Events[1]}, DeleteEvent{})

	assert.Equal(t, []models.Event{{ID: "a", Title: "A"}, {ID: "c", Title: "C"}}, s.Events)
	assert.False(t, s.EditEventOpen)
	assert.Nil(t, s.Editing)

	s = apply(s, SelectEvent{Event: models.Event{ID: "missing"}}, DeleteEvent{})
	assert.Len(t, s.Events, 2)
}

func TestEditAndDelete_IgnoreEventsWithoutID(t *testing.T) {
	original := []models.Event{
		{Title: "first"},
		{Title: "second"},
	}

	s := apply(seeded(original...),
		SelectEvent{Event: original[0]},
		SetEditTitle{Title: "renamed"},
		SaveEdit{},
	)
	assert.Equal(t, original, s.Events)

	s = apply(s, SelectEvent{Event: original[0]}, DeleteEvent{})
	assert.Equal(t, original, s.Events)
}

func TestCloseEditEvent_DiscardsBuffer(t *testing.T) {
	original := []models.Event{{ID: "a", Title: "A"}}
	s := apply(seeded(original...),
		SelectEvent{Event: original[0]},
		SetEditTitle{Title: "changed"},
		CloseEditEvent{},
	)

	assert.Equal(t, original, s.Events)
	assert.False(t, s.EditEventOpen)
	assert.Nil(t, s.Editing)
}

func TestEditSetters_WithoutBufferAreNoops(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow), SetEditTitle{Title: "x"}, SaveEdit{})
	assert.Nil(t, s.Editing)
	assert.Empty(t, s.Events)
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	prev := seeded(models.Event{ID: "a", Title: "A"}, models.Event{ID: "b", Title: "B"})
	prev = Reduce(prev, SelectEvent{Event: prev.Events[0]})

	next := apply(prev, SetEditTitle{Title: "A2"}, SaveEdit{})

	assert.Equal(t, "A", prev.Events[0].Title)
	assert.Equal(t, "A", prev.Editing.Title)
	assert.Equal(t, "A2", next.Events[0].Title)
}

func TestImportEvents_Appends(t *testing.T) {
	s := seeded(models.Event{ID: "a"})
	s = Reduce(s, ImportEvents{Events: []models.Event{{ID: "b"}, {ID: "c"}}})

	require.Len(t, s.Events, 3)
	assert.Equal(t, "c", s.Events[2].ID)
}

func TestImportEvents_ReplacesTakenIDs(t *testing.T) {
	s := seeded(models.Event{ID: "abc", Title: "Existing"})
	s = Reduce(s, ImportEvents{
		Events: []models.Event{
			{ID: "abc", Title: "Same UID"},
			{ID: "new", Title: "Fresh"},
			{ID: "new", Title: "Repeated in batch"},
			{Title: "No UID"},
		},
		FreshIDs: []string{"f1", "f2", "f3", "f4"},
	})

	ids := []string{}
	for _, e := range s.Events {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"abc", "f1", "new", "f3", "f4"}, ids)
}

func TestImportEvents_WithoutFreshIDsLeavesCollisionsUnmatchable(t *testing.T) {
	existing := models.Event{ID: "abc", Title: "Existing", StartTime: at(9, 0), EndTime: at(10, 0)}
	s := seeded(existing)
	s = Reduce(s, ImportEvents{Events: []models.Event{{ID: "abc", Title: "Copy"}}})

	require.Len(t, s.Events, 2)
	assert.Empty(t, s.Events[1].ID)

	s = apply(s, SelectEvent{Event: existing}, DeleteEvent{})
	require.Len(t, s.Events, 1)
	assert.Equal(t, "Copy", s.Events[0].Title)
}

func TestBeginNewGroup_ResetsDraft(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		BeginNewGroup{},
		SetGroupName{Name: "old"},
		AddTaskToDraft{Title: "t"},
		SetPendingTask{Title: "typing"},
		CloseNewGroup{},
	)
	assert.False(t, s.NewGroupOpen)
	assert.Equal(t, "old", s.GroupDraft.Name)

	s = Reduce(s, BeginNewGroup{})
	assert.True(t, s.NewGroupOpen)
	assert.Equal(t, "", s.GroupDraft.Name)
	assert.Empty(t, s.GroupDraft.Tasks)
	assert.Equal(t, "", s.PendingTask)
}

func TestAddTaskToDraft(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		BeginNewGroup{},
		SetPendingTask{Title: "X"},
		AddTaskToDraft{Title: ""},
	)
	assert.Empty(t, s.GroupDraft.Tasks)
	assert.Equal(t, "X", s.PendingTask)

	s = Reduce(s, AddTaskToDraft{Title: "X"})
	assert.Equal(t, []string{"X"}, s.GroupDraft.Tasks)
	assert.Equal(t, "", s.PendingTask)
}

func TestCommitNewGroup_AssignsIDs(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		BeginNewGroup{},
		SetGroupName{Name: "Nhà cửa"},
		AddTaskToDraft{Title: "Dọn dẹp"},
		AddTaskToDraft{Title: "Nấu ăn"},
		AddTaskToDraft{Title: "Đi chợ"},
		CommitNewGroup{},
	)

	require.Len(t, s.Groups, 4)
	group := s.Groups[3]
	assert.Equal(t, 4, group.ID)
	assert.Equal(t, "Nhà cửa", group.Name)
	assert.Equal(t, []models.Task{
		{ID: 401, Title: "Dọn dẹp"},
		{ID: 402, Title: "Nấu ăn"},
		{ID: 403, Title: "Đi chợ"},
	}, group.Tasks)
	assert.False(t, s.NewGroupOpen)
	assert.Equal(t, "", s.GroupDraft.Name)
	assert.Empty(t, s.GroupDraft.Tasks)
}

func TestCommitNewGroup_IDsIncreaseByOne(t *testing.T) {
	s := NewState(models.ViewMonth, testNow)
	for i := 0; i < 5; i++ {
		s = apply(s, BeginNewGroup{}, SetGroupName{Name: "g"}, AddTaskToDraft{Title: "t"}, CommitNewGroup{})
	}

	require.Len(t, s.Groups, 8)
	for i, g := range s.Groups {
		assert.Equal(t, i+1, g.ID)
	}
}

func TestCommitNewGroup_RequiresNameAndTasks(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"empty name", []Action{BeginNewGroup{}, AddTaskToDraft{Title: "t"}, CommitNewGroup{}}},
		{"no tasks", []Action{BeginNewGroup{}, SetGroupName{Name: "g"}, CommitNewGroup{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := NewState(models.ViewMonth, testNow)
			after := apply(before, tt.actions...)

			assert.Equal(t, before.Groups, after.Groups)
			assert.True(t, after.NewGroupOpen)
		})
	}
}

func TestCommittedGroupIsSelectable(t *testing.T) {
	s := apply(NewState(models.ViewMonth, testNow),
		BeginNewGroup{},
		SetGroupName{Name: "Side project"},
		AddTaskToDraft{Title: "Ship it"},
		CommitNewGroup{},
		SelectSlot{Start: at(9, 0), End: at(10, 0)},
		SelectGroup{GroupID: "4"},
		SelectTask{TaskID: "401"},
		SubmitEvent{ID: "a", Now: testNow},
	)

	require.Len(t, s.Events, 1)
	assert.Equal(t, "Ship it", s.Events[0].Title)
}

func TestViewportSetters(t *testing.T) {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	s := apply(NewState(models.ViewMonth, testNow), SetView{View: models.ViewDay}, SetDate{Date: date})

	assert.Equal(t, models.ViewDay, s.View)
	assert.Equal(t, date, s.Date)
	assert.Empty(t, s.Events)
}
