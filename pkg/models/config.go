package models

import "time"

// Config holds application configuration
type Config struct {
	AutoStart           bool         `json:"auto_start"`
	DefaultView         CalendarView `json:"default_view"`           // view shown on launch
	WeekStart           string       `json:"week_start"`             // "monday" or "sunday"
	ChimeOnAdd          bool         `json:"chime_on_add"`           // play a chime when an event is added
	HoldToDeleteSeconds int          `json:"hold_to_delete_seconds"` // 0 deletes on click
	GlobalHotkey        bool         `json:"global_hotkey"`          // Ctrl+Shift+S shows the window
}

// DefaultConfig returns the configuration used on first launch
func DefaultConfig() *Config {
	return &Config{
		AutoStart:           false,
		DefaultView:         ViewMonth,
		WeekStart:           "monday",
		ChimeOnAdd:          true,
		HoldToDeleteSeconds: 0,
		GlobalHotkey:        true,
	}
}

// Normalize replaces unknown or out-of-range values with defaults
func (c *Config) Normalize() {
	if _, err := ParseView(string(c.DefaultView)); err != nil {
		c.DefaultView = ViewMonth
	}
	switch c.WeekStart {
	case "monday", "sunday":
	default:
		c.WeekStart = "monday"
	}
	if c.HoldToDeleteSeconds < 0 {
		c.HoldToDeleteSeconds = 0
	}
	if c.HoldToDeleteSeconds > 10 {
		c.HoldToDeleteSeconds = 10
	}
}

// FirstWeekday returns the weekday calendar rows start on
func (c *Config) FirstWeekday() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}
