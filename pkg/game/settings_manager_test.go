package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestNewSettingsManagerDefaults(t *testing.T) {
	defaults := DemoSettings{Loop: true}

	tests := []struct {
		name string
		gd   func(t *testing.T) *gdata.Manager
	}{
		{"降级模式使用默认设置", func(*testing.T) *gdata.Manager { return nil }},
		{"没有存档时使用默认设置", func(t *testing.T) *gdata.Manager { return openTestGdata(t, "test_settings_defaults") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(tt.gd(t), defaults)
			s := sm.GetSettings()
			if !s.Loop || s.FadeOnSwipe || s.DisableGestures || s.Fullscreen {
				t.Errorf("settings = %+v, want defaults %+v", *s, defaults)
			}
		})
	}
}

func TestSettingsLoadSave(t *testing.T) {
	gd := openTestGdata(t, "test_settings_load_save")

	sm1 := NewSettingsManager(gd, DemoSettings{})
	if !sm1.ToggleFadeOnSwipe() {
		t.Fatal("ToggleFadeOnSwipe should return true")
	}
	sm1.ToggleLoop()
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gd, DemoSettings{DisableGestures: true})
	s := sm2.GetSettings()
	if !s.FadeOnSwipe || !s.Loop || !s.Fullscreen {
		t.Errorf("loaded = %+v, want fade, loop, fullscreen", *s)
	}
	// 存档里有该字段，覆盖默认值
	if s.DisableGestures {
		t.Error("saved DisableGestures=false should override the default")
	}
}

func TestSettingsSaveDegraded(t *testing.T) {
	sm := NewSettingsManager(nil, DemoSettings{})
	sm.ToggleDisableGestures()
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().DisableGestures {
		t.Error("in-memory change should be kept")
	}
}

func TestSettingsDefaultsAreCopied(t *testing.T) {
	sm := NewSettingsManager(nil, DemoSettings{})
	sm.ToggleLoop()
	if err := sm.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sm.GetSettings().Loop {
		t.Error("Load in degraded mode should restore untouched defaults")
	}
}
