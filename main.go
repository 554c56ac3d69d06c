package main

import (
	"log"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/borgmon/schedule-manager/pkg/audio"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
	"github.com/borgmon/schedule-manager/pkg/store"
	"golang.design/x/hotkey"
)

const appID = "io.github.borgmon.schedule-manager"

type ScheduleManager struct {
	app         fyne.App
	window      fyne.Window
	config      *models.Config
	configStore *store.ConfigStore
	schedule    *store.ScheduleStore
	calendar    *CalendarView

	addDialog   *AddEventDialog
	editDialog  *EditEventDialog
	groupDialog *NewGroupDialog

	hotkeyMu   sync.Mutex
	hotkey     *hotkey.Hotkey
	hotkeyStop chan struct{}
}

func main() {
	sm := &ScheduleManager{
		app: app.NewWithID(appID),
	}

	if err := sm.initialize(); err != nil {
		log.Fatal(err)
	}

	sm.run()
}

func (sm *ScheduleManager) initialize() error {
	sm.configStore = store.NewConfigStore(sm.app)
	sm.config = sm.configStore.Load()

	// Sync autostart state with config on startup
	if err := setupAutostart(sm.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	sm.schedule = store.NewScheduleStore(sm.config.DefaultView)
	sm.schedule.Subscribe(sm.onStateChanged)

	sm.buildWindow()
	sm.setupSystemTray()

	if sm.config.GlobalHotkey {
		sm.registerGlobalHotkey()
	}

	return nil
}

func (sm *ScheduleManager) run() {
	sm.window.Show()
	sm.app.Run()
}

func (sm *ScheduleManager) dispatch(action schedule.Action) {
	sm.schedule.Dispatch(action)
}

// onStateChanged keeps the window, dialogs and tray in step with the store.
// Dispatches happen on the Fyne main goroutine, so widgets are touched directly.
func (sm *ScheduleManager) onStateChanged(prev, next schedule.State) {
	if calendarChanged(prev, next) {
		sm.calendar.Render(next, sm.config.FirstWeekday())
	}
	if !slices.Equal(prev.Events, next.Events) {
		sm.updateSystemTrayMenu()
	}

	if added := len(next.Events) - len(prev.Events); added == 1 && prev.AddEventOpen && !next.AddEventOpen {
		if sm.config.ChimeOnAdd {
			audio.PlayChime()
		}
	}

	sm.syncAddEventDialog(prev, next)
	sm.syncEditEventDialog(prev, next)
	sm.syncNewGroupDialog(prev, next)
}

func calendarChanged(prev, next schedule.State) bool {
	return prev.View != next.View ||
		!prev.Date.Equal(next.Date) ||
		!slices.Equal(prev.Events, next.Events)
}

func (sm *ScheduleManager) showWindow() {
	sm.window.Show()
	sm.window.RequestFocus()
}

func (sm *ScheduleManager) quit() {
	sm.unregisterGlobalHotkey()
	sm.app.Quit()
}

// hasSystemTray reports whether closing the window can leave the app in the tray
func (sm *ScheduleManager) hasSystemTray() bool {
	_, ok := sm.app.(desktop.App)
	return ok
}
