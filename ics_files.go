package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/schedule-manager/pkg/calendar"
	"github.com/borgmon/schedule-manager/pkg/schedule"
)

const exportFileName = "schedule.ics"

// showImportDialog appends the events of a chosen .ics file to the schedule
func (sm *ScheduleManager) showImportDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sm.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		events, err := calendar.Decode(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to import %s: %w", reader.URI().Name(), err), sm.window)
			return
		}

		sm.dispatch(schedule.ImportEvents{Events: events})
		log.Printf("[ICS] Imported %d events from %s", len(events), reader.URI().Path())

		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Imported %d events from %s.", len(events), reader.URI().Name()), sm.window)
	}, sm.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	open.Show()
}

// showExportDialog writes every event of the schedule to a chosen .ics file
func (sm *ScheduleManager) showExportDialog() {
	events := sm.schedule.State().Events
	if len(events) == 0 {
		dialog.ShowInformation("Nothing to Export", "The schedule has no events yet.", sm.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sm.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := calendar.Encode(writer, events, time.Now()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export: %w", err), sm.window)
			return
		}
		log.Printf("[ICS] Exported %d events to %s", len(events), writer.URI().Path())
	}, sm.window)
	save.SetFileName(exportFileName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	save.Show()
}
