// Package calendar converts schedule events to and from iCalendar data.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// ErrNotICalendar is returned when the input is not a VCALENDAR stream
var ErrNotICalendar = errors.New("not iCalendar data")

// Decode reads every VEVENT from r. Events without a UID get a fresh UUID
// so they can be edited and deleted like events created in the app.
// Events without a usable start, or with an unreadable end, are skipped.
func Decode(r io.Reader) ([]models.Event, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar data: %w", err)
	}
	bodyStr := string(body)

	if err := validateICalFormat(bodyStr); err != nil {
		return nil, err
	}

	decoder := ical.NewDecoder(strings.NewReader(bodyStr))
	events := []models.Event{}
	seenEventIDs := make(map[string]bool)
	skipped, generated := 0, 0

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			event := parseEvent(comp)
			if event.StartTime.IsZero() || event.EndTime.IsZero() {
				skipped++
				log.Printf("  [ICS] Skipping event without time - Event: \"%s\"", event.Title)
				continue
			}

			if event.ID == "" || seenEventIDs[event.ID] {
				event.ID = uuid.NewString()
				generated++
			}
			seenEventIDs[event.ID] = true
			events = append(events, event)
		}
	}

	log.Printf("[ICS] Decoded %d events (%d skipped, %d generated IDs)", len(events), skipped, generated)
	return events, nil
}

func validateICalFormat(bodyStr string) error {
	trimmed := strings.TrimSpace(bodyStr)
	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		previewLen := 40
		if len(trimmed) < previewLen {
			previewLen = len(trimmed)
		}
		return fmt.Errorf("%w: expected BEGIN:VCALENDAR, got %q", ErrNotICalendar, trimmed[:previewLen])
	}
	return nil
}

func parseEvent(comp *ical.Component) models.Event {
	event := models.Event{}

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		event.ID = uidProp.Value
	}

	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		if text, err := summaryProp.Text(); err == nil {
			event.Title = text
		} else {
			event.Title = summaryProp.Value
		}
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		if t, err := parseDateTimeProperty(startProp); err == nil {
			event.StartTime = t
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp); err == nil {
			event.EndTime = t
		}
	} else if !event.StartTime.IsZero() {
		event.EndTime = implicitEnd(comp, event.StartTime)
	}

	return event
}

// implicitEnd derives the end of an event that has no DTEND: start plus
// DURATION, the next day for all-day events, otherwise the start itself.
func implicitEnd(comp *ical.Component, start time.Time) time.Time {
	if durProp := comp.Props.Get(ical.PropDuration); durProp != nil {
		if dur, err := durProp.Duration(); err == nil {
			return start.Add(dur)
		}
		return time.Time{}
	}
	if isDateOnly(comp.Props.Get(ical.PropDateTimeStart)) {
		return start.AddDate(0, 0, 1)
	}
	return start
}

func isDateOnly(prop *ical.Prop) bool {
	return prop.ValueType() == ical.ValueDate || len(prop.Value) == len("20060102")
}

func parseDateTimeProperty(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}
