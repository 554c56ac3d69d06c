package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/borgmon/schedule-manager/pkg/calendar"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *ScheduleStore {
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	return NewScheduleStore(models.ViewMonth,
		WithClock(func() time.Time { return clock }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("event-%d", n)
		}),
	)
}

func TestScheduleStore_SubmitAssignsUniqueIDs(t *testing.T) {
	s := newTestStore()
	slot := schedule.SelectSlot{
		Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Dispatch(slot)
	s.Dispatch(schedule.SubmitEvent{})
	s.Dispatch(slot)
	state := s.Dispatch(schedule.SubmitEvent{})

	require.Len(t, state.Events, 2)
	assert.Equal(t, "event-1", state.Events[0].ID)
	assert.Equal(t, "event-2", state.Events[1].ID)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), state.Draft.StartTime)

	// Ids make the two otherwise identical events individually editable
	s.Dispatch(schedule.SelectEvent{Event: state.Events[1]})
	state = s.Dispatch(schedule.DeleteEvent{})
	require.Len(t, state.Events, 1)
	assert.Equal(t, "event-1", state.Events[0].ID)
}

func TestScheduleStore_DefaultGeneratorUsesUUID(t *testing.T) {
	s := NewScheduleStore(models.ViewDay)
	s.Dispatch(schedule.SelectSlot{Start: time.Now(), End: time.Now()})
	state := s.Dispatch(schedule.SubmitEvent{})

	require.Len(t, state.Events, 1)
	assert.Len(t, state.Events[0].ID, 36)
	assert.Equal(t, models.ViewDay, state.View)
}

func TestScheduleStore_ListenersSeePrevAndNext(t *testing.T) {
	s := newTestStore()

	var calls int
	s.Subscribe(func(prev, next schedule.State) {
		calls++
		assert.False(t, prev.NewGroupOpen)
		assert.True(t, next.NewGroupOpen)
	})

	s.Dispatch(schedule.BeginNewGroup{})
	assert.Equal(t, 1, calls)
	assert.True(t, s.State().NewGroupOpen)
}

func TestScheduleStore_ListenerMayReadState(t *testing.T) {
	s := newTestStore()
	var seen models.CalendarView
	s.Subscribe(func(_, _ schedule.State) {
		seen = s.State().View
	})

	s.Dispatch(schedule.SetView{View: models.ViewAgenda})
	assert.Equal(t, models.ViewAgenda, seen)
}

const singleEventCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:abc\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART:20240101T090000Z\r\n" +
	"DTEND:20240101T100000Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestScheduleStore_ReimportKeepsIDsUnique(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 2; i++ {
		events, err := calendar.Decode(strings.NewReader(singleEventCalendar))
		require.NoError(t, err)
		s.Dispatch(schedule.ImportEvents{Events: events})
	}

	state := s.State()
	require.Len(t, state.Events, 2)
	assert.Equal(t, "abc", state.Events[0].ID)
	assert.NotEqual(t, state.Events[0].ID, state.Events[1].ID)

	s.Dispatch(schedule.SelectEvent{Event: state.Events[0]})
	s.Dispatch(schedule.SetEditTitle{Title: "Renamed"})
	state = s.Dispatch(schedule.SaveEdit{})
	assert.Equal(t, "Renamed", state.Events[0].Title)
	assert.Equal(t, "Standup", state.Events[1].Title)

	s.Dispatch(schedule.SelectEvent{Event: state.Events[0]})
	state = s.Dispatch(schedule.DeleteEvent{})
	require.Len(t, state.Events, 1)
	assert.Equal(t, "Standup", state.Events[0].Title)
}
