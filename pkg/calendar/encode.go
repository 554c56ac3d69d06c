package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/emersion/go-ical"
)

// ProductID identifies files written by this application
const ProductID = "-//borgmon//Schedule Manager//EN"

// Encode writes events as a single VCALENDAR. stamp is used as DTSTAMP.
func Encode(w io.Writer, events []models.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		if !e.HasID() {
			return fmt.Errorf("event %q has no id", e.Title)
		}
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, e.ID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime.UTC())
		if e.Title != "" {
			event.Props.SetText(ical.PropSummary, e.Title)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
