package schedule

import (
	"sort"
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
)

// AgendaLength is the number of days the agenda view lists
const AgendaLength = 30

// NavigateAction is a toolbar navigation request
type NavigateAction int

const (
	NavigatePrev NavigateAction = iota
	NavigateNext
	NavigateToday
)

// Navigate returns the anchor date after moving one view-sized step
func Navigate(view models.CalendarView, date time.Time, action NavigateAction, now time.Time) time.Time {
	if action == NavigateToday {
		return now
	}
	step := 1
	if action == NavigatePrev {
		step = -1
	}

	switch view {
	case models.ViewMonth:
		// Clamp to the 1st so Jan 31 + 1 month does not skip February
		first := time.Date(date.Year(), date.Month(), 1, date.Hour(), date.Minute(), 0, 0, date.Location())
		return first.AddDate(0, step, 0)
	case models.ViewWeek, models.ViewWorkWeek:
		return date.AddDate(0, 0, 7*step)
	case models.ViewAgenda:
		return date.AddDate(0, 0, AgendaLength*step)
	default:
		return date.AddDate(0, 0, step)
	}
}

// VisibleRange returns the [from, to) range the view shows around date
func VisibleRange(view models.CalendarView, date time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := StartOfDay(date)

	switch view {
	case models.ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last := first.AddDate(0, 1, -1)
		return StartOfWeek(first, weekStart), StartOfWeek(last, weekStart).AddDate(0, 0, 7)
	case models.ViewWeek:
		from := StartOfWeek(day, weekStart)
		return from, from.AddDate(0, 0, 7)
	case models.ViewWorkWeek:
		from := StartOfWeek(day, time.Monday)
		return from, from.AddDate(0, 0, 5)
	case models.ViewAgenda:
		return day, day.AddDate(0, 0, AgendaLength)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of t's week
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// EventsBetween returns the events overlapping [from, to), ordered by start.
// An event whose end is not after its start is kept when it starts inside
// the range.
func EventsBetween(events []models.Event, from, to time.Time) []models.Event {
	result := []models.Event{}
	for _, event := range events {
		if overlaps(event, from, to) {
			result = append(result, event)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result
}

func overlaps(event models.Event, from, to time.Time) bool {
	if !event.StartTime.Before(to) {
		return false
	}
	if event.EndTime.After(from) {
		return true
	}
	return !event.StartTime.Before(from)
}
