package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/borgmon/schedule-manager/pkg/schedule"
)

const trayUpcomingLimit = 5

func (sm *ScheduleManager) setupSystemTray() {
	sm.updateSystemTrayMenu()
}

func (sm *ScheduleManager) updateSystemTrayMenu() {
	desk, ok := sm.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	// Upcoming events section at the top
	upcoming := upcomingToday(sm.schedule.State().Events, time.Now(), trayUpcomingLimit)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming Today:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, event := range upcoming {
			eventItem := fyne.NewMenuItem(fmt.Sprintf("  %s - %s",
				event.StartTime.Format("3:04 PM"),
				truncateString(displayTitle(event.Title), 35)), nil)
			eventItem.Disabled = true
			menuItems = append(menuItems, eventItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Open Schedule", func() {
			sm.showWindow()
		}),
		fyne.NewMenuItem("New Group", func() {
			sm.showWindow()
			sm.dispatch(schedule.BeginNewGroup{})
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		sm.quit()
	}))

	menu := fyne.NewMenu("Schedule Manager", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// upcomingToday returns the next limit events starting between now and midnight
func upcomingToday(events []models.Event, now time.Time, limit int) []models.Event {
	todayEnd := schedule.StartOfDay(now).AddDate(0, 0, 1)

	upcoming := []models.Event{}
	for _, event := range schedule.EventsBetween(events, now, todayEnd) {
		if event.StartTime.Before(now) {
			continue
		}
		upcoming = append(upcoming, event)
		if len(upcoming) >= limit {
			break
		}
	}
	return upcoming
}
