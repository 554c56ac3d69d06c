package main

import (
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
	"github.com/borgmon/schedule-manager/pkg/ui/components"
)

// NewGroupDialog mirrors the group draft of the schedule state
type NewGroupDialog struct {
	dialog       *dialog.CustomDialog
	nameEntry    *widget.Entry
	tasks        *components.ListManager
	countLabel   *widget.Label
	createButton *widget.Button

	syncing bool
	closing bool
}

func (sm *ScheduleManager) newGroupDialog() *NewGroupDialog {
	d := &NewGroupDialog{}

	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetPlaceHolder("Group name")
	d.nameEntry.OnChanged = func(text string) {
		if !d.syncing {
			sm.dispatch(schedule.SetGroupName{Name: text})
		}
	}

	var tasksContainer *fyne.Container
	d.tasks, tasksContainer = components.NewListManager([]string{}, components.ListManagerConfig{
		Placeholder: "Task title",
		AddLabel:    "Add Task",
		OnAdd: func(text string) {
			sm.dispatch(schedule.AddTaskToDraft{Title: text})
		},
		OnChange: func(text string) {
			if !d.syncing {
				sm.dispatch(schedule.SetPendingTask{Title: text})
			}
		},
	})

	d.countLabel = widget.NewLabel("")
	d.countLabel.Importance = widget.LowImportance

	content := container.NewVBox(
		widget.NewForm(widget.NewFormItem("Name", d.nameEntry)),
		widget.NewLabel("Tasks"),
		tasksContainer,
		d.countLabel,
	)

	d.dialog = dialog.NewCustomWithoutButtons("New Task Group", content, sm.window)

	cancelButton := widget.NewButton("Cancel", func() {
		sm.dispatch(schedule.CloseNewGroup{})
	})
	d.createButton = widget.NewButtonWithIcon("Create", theme.ConfirmIcon(), func() {
		sm.dispatch(schedule.CommitNewGroup{})
	})
	d.createButton.Importance = widget.HighImportance
	d.dialog.SetButtons([]fyne.CanvasObject{cancelButton, d.createButton})

	d.dialog.SetOnClosed(func() {
		if !d.closing {
			sm.dispatch(schedule.CloseNewGroup{})
		}
	})
	d.dialog.Resize(fyne.NewSize(420, 0))

	return d
}

func (d *NewGroupDialog) fill(state schedule.State) {
	d.syncing = true
	defer func() { d.syncing = false }()

	if d.nameEntry.Text != state.GroupDraft.Name {
		d.nameEntry.SetText(state.GroupDraft.Name)
	}
	if !slices.Equal(d.tasks.GetData(), state.GroupDraft.Tasks) {
		d.tasks.SetData(slices.Clone(state.GroupDraft.Tasks))
	}
	d.tasks.SetEntryText(state.PendingTask)

	d.countLabel.SetText(fmt.Sprintf("%d of %d tasks", len(state.GroupDraft.Tasks), models.MaxTasksPerGroup))
	if state.GroupDraft.Valid() {
		d.createButton.Enable()
	} else {
		d.createButton.Disable()
	}
}

func (sm *ScheduleManager) syncNewGroupDialog(prev, next schedule.State) {
	switch {
	case !prev.NewGroupOpen && next.NewGroupOpen:
		sm.groupDialog = sm.newGroupDialog()
		sm.groupDialog.fill(next)
		sm.groupDialog.dialog.Show()
	case prev.NewGroupOpen && !next.NewGroupOpen:
		if sm.groupDialog != nil {
			sm.groupDialog.closing = true
			sm.groupDialog.dialog.Hide()
			sm.groupDialog = nil
		}
	case next.NewGroupOpen && sm.groupDialog != nil:
		sm.groupDialog.fill(next)
	}
}
