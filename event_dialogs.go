package main

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
	"github.com/borgmon/schedule-manager/pkg/ui/components"
)

const (
	noGroupOption = "No group"
	noTaskOption  = "No task"
)

// AddEventDialog mirrors the add-event part of the schedule state
type AddEventDialog struct {
	dialog      *dialog.CustomDialog
	titleEntry  *widget.Entry
	startEntry  *widget.Entry
	endEntry    *widget.Entry
	groupSelect *widget.Select
	taskSelect  *widget.Select

	groupIDs []string
	taskIDs  []string

	// syncing suppresses widget callbacks while the dialog is filled from state
	syncing bool
	// closing is set once the store has closed the dialog
	closing bool
}

func (sm *ScheduleManager) newAddEventDialog() *AddEventDialog {
	d := &AddEventDialog{}

	d.titleEntry = widget.NewEntry()
	d.titleEntry.SetPlaceHolder("Event title")
	d.titleEntry.OnChanged = func(text string) {
		if !d.syncing {
			sm.dispatch(schedule.SetDraftTitle{Title: text})
		}
	}

	d.startEntry = newDateTimeEntry(func(t time.Time) {
		if !d.syncing {
			sm.dispatch(schedule.SetDraftStart{Start: t})
		}
	})
	d.endEntry = newDateTimeEntry(func(t time.Time) {
		if !d.syncing {
			sm.dispatch(schedule.SetDraftEnd{End: t})
		}
	})

	d.groupSelect = widget.NewSelect(nil, func(string) {
		if d.syncing {
			return
		}
		if i := d.groupSelect.SelectedIndex(); i >= 0 && i < len(d.groupIDs) {
			sm.dispatch(schedule.SelectGroup{GroupID: d.groupIDs[i]})
		}
	})
	d.groupSelect.PlaceHolder = "Pick a task group"

	d.taskSelect = widget.NewSelect(nil, func(string) {
		if d.syncing {
			return
		}
		if i := d.taskSelect.SelectedIndex(); i >= 0 && i < len(d.taskIDs) {
			sm.dispatch(schedule.SelectTask{TaskID: d.taskIDs[i]})
		}
	})
	d.taskSelect.PlaceHolder = "Pick a task"

	form := widget.NewForm(
		widget.NewFormItem("Group", d.groupSelect),
		widget.NewFormItem("Task", d.taskSelect),
		widget.NewFormItem("Title", d.titleEntry),
		widget.NewFormItem("Start", d.startEntry),
		widget.NewFormItem("End", d.endEntry),
	)

	hint := widget.NewLabel("Times use the format " + models.LocalDateTimeLayout + ". A selected task overrides the title.")
	hint.Importance = widget.LowImportance
	hint.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(form, hint)

	d.dialog = dialog.NewCustomWithoutButtons("Add Event", content, sm.window)

	cancelButton := widget.NewButton("Cancel", func() {
		sm.dispatch(schedule.CloseAddEvent{})
	})
	addButton := widget.NewButtonWithIcon("Add", theme.ConfirmIcon(), func() {
		sm.dispatch(schedule.SubmitEvent{})
	})
	addButton.Importance = widget.HighImportance
	d.dialog.SetButtons([]fyne.CanvasObject{cancelButton, addButton})

	d.dialog.SetOnClosed(func() {
		if !d.closing {
			sm.dispatch(schedule.CloseAddEvent{})
		}
	})
	d.dialog.Resize(fyne.NewSize(460, 0))

	return d
}

// fill copies the draft and catalog from state into the widgets
func (d *AddEventDialog) fill(state schedule.State, times bool) {
	d.syncing = true
	defer func() { d.syncing = false }()

	if times {
		d.startEntry.SetText(models.FormatLocal(state.Draft.StartTime))
		d.endEntry.SetText(models.FormatLocal(state.Draft.EndTime))
	}
	if d.titleEntry.Text != state.Draft.Title {
		d.titleEntry.SetText(state.Draft.Title)
	}

	groupOptions := []string{noGroupOption}
	d.groupIDs = []string{""}
	for _, g := range state.Groups {
		groupOptions = append(groupOptions, g.Name)
		d.groupIDs = append(d.groupIDs, strconv.Itoa(g.ID))
	}
	d.groupSelect.SetOptions(groupOptions)
	selectByID(d.groupSelect, d.groupIDs, state.SelectedGroup)

	taskOptions := []string{noTaskOption}
	d.taskIDs = []string{""}
	for _, task := range state.SelectedGroupTasks() {
		taskOptions = append(taskOptions, task.Title)
		d.taskIDs = append(d.taskIDs, strconv.Itoa(task.ID))
	}
	d.taskSelect.SetOptions(taskOptions)
	selectByID(d.taskSelect, d.taskIDs, state.SelectedTask)

	if state.SelectedGroup == "" {
		d.taskSelect.Hide()
	} else {
		d.taskSelect.Show()
	}

	if state.SelectedTask == "" {
		d.titleEntry.Enable()
		d.titleEntry.SetPlaceHolder("Event title")
	} else {
		d.titleEntry.Disable()
		if task, ok := schedule.FindTask(state.Groups, state.SelectedGroup, state.SelectedTask); ok {
			d.titleEntry.SetPlaceHolder(task.Title)
		}
	}
}

func (sm *ScheduleManager) syncAddEventDialog(prev, next schedule.State) {
	switch {
	case !prev.AddEventOpen && next.AddEventOpen:
		sm.addDialog = sm.newAddEventDialog()
		sm.addDialog.fill(next, true)
		sm.addDialog.dialog.Show()
	case prev.AddEventOpen && !next.AddEventOpen:
		if sm.addDialog != nil {
			sm.addDialog.closing = true
			sm.addDialog.dialog.Hide()
			sm.addDialog = nil
		}
	case next.AddEventOpen && sm.addDialog != nil:
		// Times only change through their own entries while open
		sm.addDialog.fill(next, false)
	}
}

// EditEventDialog mirrors the edit buffer of the schedule state
type EditEventDialog struct {
	dialog       *dialog.CustomDialog
	titleEntry   *widget.Entry
	startEntry   *widget.Entry
	endEntry     *widget.Entry
	deleteButton *components.HoldButton

	syncing bool
	closing bool
}

func (sm *ScheduleManager) newEditEventDialog() *EditEventDialog {
	d := &EditEventDialog{}

	d.titleEntry = widget.NewEntry()
	d.titleEntry.SetPlaceHolder("Event title")
	d.titleEntry.OnChanged = func(text string) {
		if !d.syncing {
			sm.dispatch(schedule.SetEditTitle{Title: text})
		}
	}
	d.startEntry = newDateTimeEntry(func(t time.Time) {
		if !d.syncing {
			sm.dispatch(schedule.SetEditStart{Start: t})
		}
	})
	d.endEntry = newDateTimeEntry(func(t time.Time) {
		if !d.syncing {
			sm.dispatch(schedule.SetEditEnd{End: t})
		}
	})

	form := widget.NewForm(
		widget.NewFormItem("Title", d.titleEntry),
		widget.NewFormItem("Start", d.startEntry),
		widget.NewFormItem("End", d.endEntry),
	)

	hold := time.Duration(sm.config.HoldToDeleteSeconds) * time.Second
	deleteText := "Delete"
	if hold > 0 {
		deleteText = "Hold to Delete"
	}
	d.deleteButton = components.NewHoldButton(deleteText, hold, func() {
		sm.dispatch(schedule.DeleteEvent{})
	})

	d.dialog = dialog.NewCustomWithoutButtons("Edit Event", form, sm.window)

	cancelButton := widget.NewButton("Cancel", func() {
		sm.dispatch(schedule.CloseEditEvent{})
	})
	saveButton := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		sm.dispatch(schedule.SaveEdit{})
	})
	saveButton.Importance = widget.HighImportance
	d.dialog.SetButtons([]fyne.CanvasObject{d.deleteButton, cancelButton, saveButton})

	d.dialog.SetOnClosed(func() {
		if !d.closing {
			sm.dispatch(schedule.CloseEditEvent{})
		}
	})
	d.dialog.Resize(fyne.NewSize(460, 0))

	return d
}

func (d *EditEventDialog) fill(event models.Event) {
	d.syncing = true
	defer func() { d.syncing = false }()

	d.titleEntry.SetText(event.Title)
	d.startEntry.SetText(models.FormatLocal(event.StartTime))
	d.endEntry.SetText(models.FormatLocal(event.EndTime))
}

func (sm *ScheduleManager) syncEditEventDialog(prev, next schedule.State) {
	switch {
	case !prev.EditEventOpen && next.EditEventOpen:
		sm.editDialog = sm.newEditEventDialog()
		if next.Editing != nil {
			sm.editDialog.fill(*next.Editing)
		}
		sm.editDialog.dialog.Show()
	case prev.EditEventOpen && !next.EditEventOpen:
		if sm.editDialog != nil {
			sm.editDialog.closing = true
			sm.editDialog.dialog.Hide()
			sm.editDialog = nil
		}
	case next.EditEventOpen && sm.editDialog != nil:
		// Another event was picked while the dialog was open
		if next.Editing != nil && (prev.Editing == nil || !prev.Editing.SameID(*next.Editing)) {
			sm.editDialog.fill(*next.Editing)
		}
	}
}

// newDateTimeEntry returns an entry that reports only parseable local times
func newDateTimeEntry(onParsed func(time.Time)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(models.LocalDateTimeLayout)
	entry.Validator = func(text string) error {
		_, err := models.ParseLocal(text)
		return err
	}
	entry.OnChanged = func(text string) {
		if t, err := models.ParseLocal(text); err == nil {
			onParsed(t)
		}
	}
	return entry
}

func selectByID(sel *widget.Select, ids []string, id string) {
	for i, candidate := range ids {
		if candidate == id {
			sel.SetSelectedIndex(i)
			return
		}
	}
	sel.ClearSelected()
}
