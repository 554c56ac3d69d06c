package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
)

const maxEventsPerMonthCell = 3

// CalendarCallbacks are the events the calendar surface emits
type CalendarCallbacks struct {
	OnSelectSlot  func(start, end time.Time)
	OnSelectEvent func(event models.Event)
}

// CalendarView renders the events of a schedule state for the current view
type CalendarView struct {
	callbacks   CalendarCallbacks
	title       *widget.Label
	content     *fyne.Container
	viewButtons map[models.CalendarView]*widget.Button
}

func NewCalendarView(callbacks CalendarCallbacks) *CalendarView {
	title := widget.NewLabel("")
	title.TextStyle.Bold = true

	return &CalendarView{
		callbacks:   callbacks,
		title:       title,
		content:     container.NewStack(),
		viewButtons: make(map[models.CalendarView]*widget.Button),
	}
}

func (cv *CalendarView) Container() *fyne.Container {
	return cv.content
}

func (cv *CalendarView) TitleLabel() *widget.Label {
	return cv.title
}

// TrackViewButton registers a toolbar button highlighted while its view is active
func (cv *CalendarView) TrackViewButton(view models.CalendarView, button *widget.Button) {
	cv.viewButtons[view] = button
}

// Render rebuilds the calendar surface from state
func (cv *CalendarView) Render(state schedule.State, weekStart time.Weekday) {
	from, to := schedule.VisibleRange(state.View, state.Date, weekStart)
	events := schedule.EventsBetween(state.Events, from, to)

	cv.title.SetText(rangeTitle(state.View, state.Date, from, to))
	for view, button := range cv.viewButtons {
		if view == state.View {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	var body fyne.CanvasObject
	switch state.View {
	case models.ViewMonth:
		body = cv.renderMonth(state.Date, from, to, events)
	case models.ViewAgenda:
		body = cv.renderAgenda(events)
	default:
		body = cv.renderDays(from, to, events)
	}

	cv.content.Objects = []fyne.CanvasObject{body}
	cv.content.Refresh()
}

func (cv *CalendarView) renderMonth(anchor, from, to time.Time, events []models.Event) fyne.CanvasObject {
	grid := container.NewGridWithColumns(7)

	for day := from; day.Before(to) && len(grid.Objects) < 7; day = day.AddDate(0, 0, 1) {
		header := widget.NewLabel(day.Format("Mon"))
		header.Alignment = fyne.TextAlignCenter
		header.TextStyle.Bold = true
		grid.Add(header)
	}

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		grid.Add(cv.monthCell(day, day.Month() == anchor.Month(), events))
	}

	return container.NewVScroll(grid)
}

func (cv *CalendarView) monthCell(day time.Time, inMonth bool, events []models.Event) fyne.CanvasObject {
	next := day.AddDate(0, 0, 1)

	dayButton := widget.NewButton(fmt.Sprintf("%d", day.Day()), func() {
		cv.selectSlot(day, next)
	})
	if !inMonth {
		dayButton.Importance = widget.LowImportance
	}
	if schedule.StartOfDay(time.Now()).Equal(day) {
		dayButton.Importance = widget.HighImportance
	}

	cell := container.NewVBox(dayButton)
	dayEvents := schedule.EventsBetween(events, day, next)
	for i, event := range dayEvents {
		if i == maxEventsPerMonthCell {
			more := widget.NewLabel(fmt.Sprintf("+%d more", len(dayEvents)-maxEventsPerMonthCell))
			more.Importance = widget.LowImportance
			cell.Add(more)
			break
		}
		cell.Add(cv.eventButton(event, event.StartTime.Format("15:04")+" "))
	}

	return container.NewPadded(cell)
}

// renderDays draws one column per day with its events followed by hourly slots
func (cv *CalendarView) renderDays(from, to time.Time, events []models.Event) fyne.CanvasObject {
	columns := container.NewGridWithColumns(daysBetween(from, to))

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)

		header := widget.NewLabel(day.Format("Mon 2 Jan"))
		header.Alignment = fyne.TextAlignCenter
		header.TextStyle.Bold = true

		column := container.NewVBox(header)
		for _, event := range schedule.EventsBetween(events, day, next) {
			column.Add(cv.eventButton(event, eventTimeRange(event)+" "))
		}
		column.Add(widget.NewSeparator())

		for hour := 0; hour < 24; hour++ {
			start, end := hourSlot(day, hour)
			slot := widget.NewButton(start.Format("15:04"), func() {
				cv.selectSlot(start, end)
			})
			slot.Importance = widget.LowImportance
			slot.Alignment = widget.ButtonAlignLeading
			column.Add(slot)
		}

		columns.Add(column)
	}

	return container.NewVScroll(columns)
}

func (cv *CalendarView) renderAgenda(events []models.Event) fyne.CanvasObject {
	if len(events) == 0 {
		empty := widget.NewLabel("No events in this range.\n\nSwitch to the Month, Week or Day view and click a slot to add one.")
		empty.Wrapping = fyne.TextWrapWord
		empty.Importance = widget.MediumImportance
		return container.NewPadded(empty)
	}

	rows := container.NewVBox()
	lastDay := ""
	for _, event := range events {
		dayLabel := event.StartTime.Format("Mon Jan 2, 2006")
		if dayLabel != lastDay {
			header := widget.NewLabel(dayLabel)
			header.TextStyle.Bold = true
			rows.Add(header)
			lastDay = dayLabel
		}
		rows.Add(cv.eventButton(event, eventTimeRange(event)+"  "))
	}

	return container.NewVScroll(container.NewPadded(rows))
}

func (cv *CalendarView) eventButton(event models.Event, prefix string) *widget.Button {
	button := widget.NewButton(prefix+truncateString(displayTitle(event.Title), 40), func() {
		if cv.callbacks.OnSelectEvent != nil {
			cv.callbacks.OnSelectEvent(event)
		}
	})
	button.Alignment = widget.ButtonAlignLeading
	button.Importance = widget.SuccessImportance
	return button
}

func (cv *CalendarView) selectSlot(start, end time.Time) {
	if cv.callbacks.OnSelectSlot != nil {
		cv.callbacks.OnSelectSlot(start, end)
	}
}

func rangeTitle(view models.CalendarView, anchor, from, to time.Time) string {
	last := to.AddDate(0, 0, -1)
	switch view {
	case models.ViewMonth:
		return anchor.Format("January 2006")
	case models.ViewDay:
		return from.Format("Monday, Jan 2 2006")
	default:
		return from.Format("Jan 2") + " – " + last.Format("Jan 2, 2006")
	}
}

// hourSlot returns the wall-clock bounds of an hour of day
func hourSlot(day time.Time, hour int) (start, end time.Time) {
	start = time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	end = time.Date(day.Year(), day.Month(), day.Day(), hour+1, 0, 0, 0, day.Location())
	return start, end
}

func eventTimeRange(event models.Event) string {
	return event.StartTime.Format("15:04") + "–" + event.EndTime.Format("15:04")
}

func daysBetween(from, to time.Time) int {
	days := 0
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		days++
	}
	if days == 0 {
		return 1
	}
	return days
}

// displayTitle shows untitled events with a placeholder
func displayTitle(title string) string {
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// truncateString truncates a string to maxLen runes, adding "..." if needed
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
