package main

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/borgmon/schedule-manager/pkg/platform"
	"golang.design/x/hotkey"
)

// registerGlobalHotkey binds Ctrl+Shift+S to bringing the schedule window forward
func (sm *ScheduleManager) registerGlobalHotkey() {
	sm.hotkeyMu.Lock()
	if sm.hotkeyStop != nil {
		sm.hotkeyMu.Unlock()
		return
	}
	stop := make(chan struct{})
	sm.hotkeyStop = stop
	sm.hotkeyMu.Unlock()

	go func() {
		hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyS)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register Ctrl+Shift+S hotkey: %v", err)
			sm.hotkeyMu.Lock()
			if sm.hotkeyStop == stop {
				sm.hotkeyStop = nil
			}
			sm.hotkeyMu.Unlock()
			return
		}

		sm.hotkeyMu.Lock()
		select {
		case <-stop:
			// Unregistered while registration was in flight
			sm.hotkeyMu.Unlock()
			hk.Unregister()
			return
		default:
		}
		sm.hotkey = hk
		sm.hotkeyMu.Unlock()
		log.Println("Registered Ctrl+Shift+S hotkey")

		for {
			select {
			case <-stop:
				return
			case <-hk.Keydown():
				if !platform.IsAppActive() {
					platform.ActivateApp()
				}
				fyne.Do(sm.showWindow)
			}
		}
	}()
}

func (sm *ScheduleManager) unregisterGlobalHotkey() {
	sm.hotkeyMu.Lock()
	defer sm.hotkeyMu.Unlock()

	if sm.hotkeyStop != nil {
		close(sm.hotkeyStop)
		sm.hotkeyStop = nil
	}
	if sm.hotkey != nil {
		if err := sm.hotkey.Unregister(); err != nil {
			log.Printf("Failed to unregister hotkey: %v", err)
		}
		sm.hotkey = nil
		log.Println("Unregistered Ctrl+Shift+S hotkey")
	}
}
