//go:build darwin

// Package platform wraps the few native window-manager calls the app needs.
package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

int scheduleAppIsActive() {
    return [NSApp isActive] ? 1 : 0;
}

void scheduleAppActivate() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// IsAppActive reports whether the schedule manager is the frontmost app
func IsAppActive() bool {
	return C.scheduleAppIsActive() == 1
}

// ActivateApp moves the schedule manager in front of other apps, so a
// window shown from the global hotkey receives focus.
func ActivateApp() {
	C.scheduleAppActivate()
}
