package models

import (
	"errors"
	"fmt"
	"strings"
)

// CalendarView is the granularity the calendar surface renders
type CalendarView string

const (
	ViewMonth    CalendarView = "month"
	ViewWeek     CalendarView = "week"
	ViewWorkWeek CalendarView = "work_week"
	ViewDay      CalendarView = "day"
	ViewAgenda   CalendarView = "agenda"
)

// ErrUnknownView is returned by ParseView for names outside AllViews
var ErrUnknownView = errors.New("unknown calendar view")

// AllViews lists the views in toolbar order
func AllViews() []CalendarView {
	return []CalendarView{ViewMonth, ViewWeek, ViewWorkWeek, ViewDay, ViewAgenda}
}

// Label returns the toolbar caption for the view
func (v CalendarView) Label() string {
	switch v {
	case ViewMonth:
		return "Month"
	case ViewWeek:
		return "Week"
	case ViewWorkWeek:
		return "Work Week"
	case ViewDay:
		return "Day"
	case ViewAgenda:
		return "Agenda"
	default:
		return string(v)
	}
}

// ParseView parses a view name, case-insensitively
func ParseView(name string) (CalendarView, error) {
	v := CalendarView(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllViews() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, name)
}
