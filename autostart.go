package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

const (
	autostartName        = "schedule-manager"
	autostartDisplayName = "Schedule Manager"
)

// loginItem describes the schedule manager as a login item for the running binary
func loginItem() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate schedule manager executable: %w", err)
	}

	// Point the login item at the real binary, not a symlink
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule manager executable: %w", err)
	}

	return &autostart.App{
		Name:        autostartName,
		DisplayName: autostartDisplayName,
		Exec:        []string{execPath},
	}, nil
}

// setupAutostart makes the schedule manager open at login, or stops it
func setupAutostart(enable bool) error {
	app, err := loginItem()
	if err != nil {
		return err
	}

	if enable {
		if !app.IsEnabled() {
			if err := app.Enable(); err != nil {
				log.Printf("[CONFIG] Failed to open Schedule Manager at login: %v", err)
				return fmt.Errorf("failed to open Schedule Manager at login: %w", err)
			}
			log.Printf("[CONFIG] Schedule Manager will open at login (%s)", app.Exec[0])
		}
	} else {
		if app.IsEnabled() {
			if err := app.Disable(); err != nil {
				log.Printf("[CONFIG] Failed to remove Schedule Manager login item: %v", err)
				return fmt.Errorf("failed to remove Schedule Manager login item: %w", err)
			}
			log.Println("[CONFIG] Schedule Manager no longer opens at login")
		}
	}

	return nil
}
