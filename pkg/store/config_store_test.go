package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/schedule-manager/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestConfigStore_DefaultsOnFirstLoad(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t))

	assert.Equal(t, models.DefaultConfig(), cs.Load())
}

func TestConfigStore_SaveLoad(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t))

	cs.Save(&models.Config{
		AutoStart:           true,
		DefaultView:         models.ViewWeek,
		WeekStart:           "sunday",
		ChimeOnAdd:          false,
		HoldToDeleteSeconds: 3,
		GlobalHotkey:        false,
	})

	loaded := cs.Load()
	assert.True(t, loaded.AutoStart)
	assert.Equal(t, models.ViewWeek, loaded.DefaultView)
	assert.Equal(t, "sunday", loaded.WeekStart)
	assert.False(t, loaded.ChimeOnAdd)
	assert.Equal(t, 3, loaded.HoldToDeleteSeconds)
	assert.False(t, loaded.GlobalHotkey)
}

func TestConfigStore_LoadNormalizesBadValues(t *testing.T) {
	app := test.NewTempApp(t)
	app.Preferences().SetString("default_view", "fortnight")
	app.Preferences().SetInt("hold_to_delete_seconds", -4)

	loaded := NewConfigStore(app).Load()
	assert.Equal(t, models.ViewMonth, loaded.DefaultView)
	assert.Equal(t, 0, loaded.HoldToDeleteSeconds)
}
