package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
)

func (sm *ScheduleManager) buildWindow() {
	sm.window = sm.app.NewWindow("Schedule Manager")

	sm.calendar = NewCalendarView(CalendarCallbacks{
		OnSelectSlot: func(start, end time.Time) {
			sm.dispatch(schedule.SelectSlot{Start: start, End: end})
		},
		OnSelectEvent: func(event models.Event) {
			sm.dispatch(schedule.SelectEvent{Event: event})
		},
	})

	content := container.NewBorder(
		container.NewPadded(sm.buildToolbar()),
		nil,
		nil,
		nil,
		sm.calendar.Container(),
	)

	sm.window.SetContent(content)
	sm.window.Resize(fyne.NewSize(1100, 760))
	sm.window.CenterOnScreen()
	sm.window.SetMaster()

	sm.window.SetCloseIntercept(func() {
		// Keep running in the tray when there is one
		if sm.hasSystemTray() {
			sm.window.Hide()
			return
		}
		sm.quit()
	})

	sm.setupKeyboardShortcuts()
	sm.calendar.Render(sm.schedule.State(), sm.config.FirstWeekday())
}

func (sm *ScheduleManager) buildToolbar() fyne.CanvasObject {
	navigate := func(action schedule.NavigateAction) func() {
		return func() {
			state := sm.schedule.State()
			sm.dispatch(schedule.SetDate{Date: schedule.Navigate(state.View, state.Date, action, time.Now())})
		}
	}

	todayButton := widget.NewButton("Today", navigate(schedule.NavigateToday))
	backButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), navigate(schedule.NavigatePrev))
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), navigate(schedule.NavigateNext))

	viewButtons := container.NewHBox()
	for _, view := range models.AllViews() {
		view := view
		button := widget.NewButton(view.Label(), func() {
			sm.dispatch(schedule.SetView{View: view})
		})
		sm.calendar.TrackViewButton(view, button)
		viewButtons.Add(button)
	}

	newGroupButton := widget.NewButtonWithIcon("New Group", theme.ContentAddIcon(), func() {
		sm.dispatch(schedule.BeginNewGroup{})
	})
	newGroupButton.Importance = widget.HighImportance

	importButton := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		sm.showImportDialog()
	})
	exportButton := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		sm.showExportDialog()
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		sm.showSettingsDialog()
	})

	leftButtons := container.NewHBox(
		todayButton,
		backButton,
		nextButton,
		sm.calendar.TitleLabel(),
	)
	rightButtons := container.NewHBox(
		viewButtons,
		widget.NewSeparator(),
		newGroupButton,
		importButton,
		exportButton,
		settingsButton,
	)

	return container.NewBorder(nil, nil, leftButtons, rightButtons, container.NewHBox())
}

// setupKeyboardShortcuts binds navigation keys while no entry has focus
func (sm *ScheduleManager) setupKeyboardShortcuts() {
	sm.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if sm.window.Canvas().Focused() != nil {
			return
		}
		state := sm.schedule.State()

		switch key.Name {
		case fyne.KeyLeft:
			sm.dispatch(schedule.SetDate{Date: schedule.Navigate(state.View, state.Date, schedule.NavigatePrev, time.Now())})
		case fyne.KeyRight:
			sm.dispatch(schedule.SetDate{Date: schedule.Navigate(state.View, state.Date, schedule.NavigateNext, time.Now())})
		case fyne.KeyT:
			sm.dispatch(schedule.SetDate{Date: time.Now()})
		case fyne.KeyM:
			sm.dispatch(schedule.SetView{View: models.ViewMonth})
		case fyne.KeyW:
			sm.dispatch(schedule.SetView{View: models.ViewWeek})
		case fyne.KeyD:
			sm.dispatch(schedule.SetView{View: models.ViewDay})
		case fyne.KeyA:
			sm.dispatch(schedule.SetView{View: models.ViewAgenda})
		}
	})
}
