package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/schedule-manager/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	app fyne.App
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{app: app}
}

// Load loads configuration from preferences, falling back to defaults
func (cs *ConfigStore) Load() *models.Config {
	prefs := cs.app.Preferences()
	defaults := models.DefaultConfig()

	config := &models.Config{
		AutoStart:           prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		DefaultView:         models.CalendarView(prefs.StringWithFallback("default_view", string(defaults.DefaultView))),
		WeekStart:           prefs.StringWithFallback("week_start", defaults.WeekStart),
		ChimeOnAdd:          prefs.BoolWithFallback("chime_on_add", defaults.ChimeOnAdd),
		HoldToDeleteSeconds: prefs.IntWithFallback("hold_to_delete_seconds", defaults.HoldToDeleteSeconds),
		GlobalHotkey:        prefs.BoolWithFallback("global_hotkey", defaults.GlobalHotkey),
	}
	config.Normalize()

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	config.Normalize()
	prefs := cs.app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetString("default_view", string(config.DefaultView))
	prefs.SetString("week_start", config.WeekStart)
	prefs.SetBool("chime_on_add", config.ChimeOnAdd)
	prefs.SetInt("hold_to_delete_seconds", config.HoldToDeleteSeconds)
	prefs.SetBool("global_hotkey", config.GlobalHotkey)
}
