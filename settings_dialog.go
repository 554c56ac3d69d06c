package main

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/schedule-manager/pkg/models"
)

var holdOptions = []string{"0", "1", "2", "3", "5", "10"}

func (sm *ScheduleManager) showSettingsDialog() {
	autoStartCheck := widget.NewCheck("Launch at login", nil)
	autoStartCheck.SetChecked(sm.config.AutoStart)

	viewLabels := []string{}
	for _, view := range models.AllViews() {
		viewLabels = append(viewLabels, view.Label())
	}
	defaultViewSelect := widget.NewSelect(viewLabels, nil)
	defaultViewSelect.SetSelected(sm.config.DefaultView.Label())

	weekStartSelect := widget.NewSelect([]string{"Monday", "Sunday"}, nil)
	if sm.config.WeekStart == "sunday" {
		weekStartSelect.SetSelected("Sunday")
	} else {
		weekStartSelect.SetSelected("Monday")
	}

	chimeCheck := widget.NewCheck("Play a chime when an event is added", nil)
	chimeCheck.SetChecked(sm.config.ChimeOnAdd)

	holdSelect := widget.NewSelect(holdOptions, nil)
	holdSelect.SetSelected(strconv.Itoa(sm.config.HoldToDeleteSeconds))

	hotkeyCheck := widget.NewCheck("Ctrl+Shift+S shows the schedule", nil)
	hotkeyCheck.SetChecked(sm.config.GlobalHotkey)

	items := []*widget.FormItem{
		widget.NewFormItem("Startup", autoStartCheck),
		widget.NewFormItem("Default view", defaultViewSelect),
		widget.NewFormItem("Week starts on", weekStartSelect),
		widget.NewFormItem("Sound", chimeCheck),
		widget.NewFormItem("Hold to delete (s)", holdSelect),
		widget.NewFormItem("Global hotkey", hotkeyCheck),
	}

	form := dialog.NewForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		newConfig := *sm.config
		newConfig.AutoStart = autoStartCheck.Checked
		newConfig.ChimeOnAdd = chimeCheck.Checked
		newConfig.GlobalHotkey = hotkeyCheck.Checked
		newConfig.WeekStart = "monday"
		if weekStartSelect.Selected == "Sunday" {
			newConfig.WeekStart = "sunday"
		}
		if i := defaultViewSelect.SelectedIndex(); i >= 0 {
			newConfig.DefaultView = models.AllViews()[i]
		}
		if seconds, err := strconv.Atoi(holdSelect.Selected); err == nil {
			newConfig.HoldToDeleteSeconds = seconds
		}

		sm.applyConfig(&newConfig)
	}, sm.window)
	form.Resize(fyne.NewSize(440, 0))
	form.Show()
}

// applyConfig saves the configuration and reconciles the running app with it
func (sm *ScheduleManager) applyConfig(newConfig *models.Config) {
	oldConfig := sm.config
	sm.configStore.Save(newConfig)
	sm.config = newConfig

	if oldConfig.AutoStart != newConfig.AutoStart {
		go func(enable bool) {
			if err := setupAutostart(enable); err != nil {
				fyne.Do(func() {
					dialog.ShowError(err, sm.window)
				})
			}
		}(newConfig.AutoStart)
	}

	if oldConfig.GlobalHotkey != newConfig.GlobalHotkey {
		if newConfig.GlobalHotkey {
			sm.registerGlobalHotkey()
		} else {
			sm.unregisterGlobalHotkey()
		}
	}

	if oldConfig.WeekStart != newConfig.WeekStart {
		sm.calendar.Render(sm.schedule.State(), newConfig.FirstWeekday())
	}

	log.Printf("[CONFIG] Saved settings: view=%s week_start=%s hold=%ds",
		newConfig.DefaultView, newConfig.WeekStart, newConfig.HoldToDeleteSeconds)
}
