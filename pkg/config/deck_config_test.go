package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/swipedeck/pkg/swipe"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// TestLoadDeckConfigDefaults 未提供文件时使用默认值
func TestLoadDeckConfigDefaults(t *testing.T) {
	cfg, err := LoadDeckConfig("")
	if err != nil {
		t.Fatalf("LoadDeckConfig error: %v", err)
	}

	if cfg.Loop {
		t.Error("Loop: got true, want false")
	}
	if !cfg.Stack || cfg.StackDepth != 2 {
		t.Errorf("Stack/StackDepth: got %v/%d, want true/2", cfg.Stack, cfg.StackDepth)
	}
	if !cfg.ShowYup || !cfg.ShowNope {
		t.Error("ShowYup/ShowNope should default to true")
	}
	if cfg.YupText != "Yup!" || cfg.NopeText != "Nope!" {
		t.Errorf("texts: got %q/%q", cfg.YupText, cfg.NopeText)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS: got %d, want 60", cfg.FPS)
	}
	if cfg.ExitEasing != "linear" {
		t.Errorf("ExitEasing: got %q, want linear", cfg.ExitEasing)
	}
}

// TestLoadDeckConfigMissingFile 文件不存在不是错误
func TestLoadDeckConfigMissingFile(t *testing.T) {
	cfg, err := LoadDeckConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.StackDepth != 2 {
		t.Errorf("StackDepth: got %d, want 2", cfg.StackDepth)
	}
}

// TestLoadDeckConfigFromFile 从文件加载
func TestLoadDeckConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
loop: true
only-horizontal: true
stack-depth: 3
stack-offset-x: 4
stack-offset-y: 8.5
fade-on-swipe: true
yup-text: "Like"
exit-easing: ease-out-cubic
`)

	cfg, err := LoadDeckConfig(path)
	if err != nil {
		t.Fatalf("LoadDeckConfig error: %v", err)
	}
	if !cfg.Loop || !cfg.OnlyHorizontal || !cfg.FadeOnSwipe {
		t.Errorf("bool fields not loaded: %+v", cfg)
	}
	if cfg.StackDepth != 3 || cfg.StackOffsetX != 4 || cfg.StackOffsetY != 8.5 {
		t.Errorf("stack fields not loaded: %+v", cfg)
	}
	if cfg.YupText != "Like" || cfg.NopeText != "Nope!" {
		t.Errorf("texts: got %q/%q, want Like/Nope!", cfg.YupText, cfg.NopeText)
	}
	if cfg.ExitEasing != "ease-out-cubic" {
		t.Errorf("ExitEasing: got %q", cfg.ExitEasing)
	}
}

// TestLoadDeckConfigEnvOverride 环境变量覆盖文件
func TestLoadDeckConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "stack-depth: 3\n")
	t.Setenv("SWIPEDECK_STACK_DEPTH", "5")
	t.Setenv("SWIPEDECK_LOOP", "true")

	cfg, err := LoadDeckConfig(path)
	if err != nil {
		t.Fatalf("LoadDeckConfig error: %v", err)
	}
	if cfg.StackDepth != 5 {
		t.Errorf("StackDepth: got %d, want 5 from env", cfg.StackDepth)
	}
	if !cfg.Loop {
		t.Error("Loop: env override not applied")
	}
}

// TestLoadDeckConfigInvalid 结构校验失败
func TestLoadDeckConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"堆叠深度为零", "stack-depth: 0\n"},
		{"帧率过高", "fps: 1000\n"},
		{"未知缓动", "exit-easing: bounce\n"},
		{"缩放步长过大", "stack-scale-step: 0.8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadDeckConfig(writeConfig(t, tt.content)); err == nil {
				t.Errorf("expected validation error for %q", tt.content)
			}
		})
	}
}

// TestParseDeckConfig 从字节加载
func TestParseDeckConfig(t *testing.T) {
	cfg, err := ParseDeckConfig([]byte("stack-scale-step: 0.05\nshow-yup: false\n"))
	if err != nil {
		t.Fatalf("ParseDeckConfig error: %v", err)
	}
	if cfg.StackScaleStep != 0.05 || cfg.ShowYup {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := ParseDeckConfig([]byte("stack-depth: [1, 2")); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

// TestToOptions 配置到 swipe.Options 的转换
func TestToOptions(t *testing.T) {
	cfg := DeckConfig{
		Loop:           true,
		Stack:          true,
		StackDepth:     4,
		StackOffsetY:   6,
		StackScaleStep: 0.1,
		FadeOnSwipe:    true,
		ShowYup:        true,
		YupText:        "OK",
		NopeText:       "No",
		FPS:            30,
		ExitEasing:     "ease-in-quad",
	}

	opts := ToOptions[string](cfg)
	if !opts.Loop || opts.StackDepth != 4 || opts.StackOffsetY != 6 || opts.StackScaleStep != 0.1 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.ShowNope {
		t.Error("ShowNope should follow config (false)")
	}
	if opts.FPS != 30 || opts.YupText != "OK" || opts.NopeText != "No" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if got := opts.ExitEasing(0.5); got != swipe.EaseInQuad(0.5) {
		t.Errorf("ExitEasing(0.5) = %v, want ease-in-quad", got)
	}
}

// TestEasingByName 未知名称回退到线性
func TestEasingByName(t *testing.T) {
	if got := EasingByName("unknown")(0.3); got != 0.3 {
		t.Errorf("unknown easing should be linear, got %v", got)
	}
	if got := EasingByName("ease-out-cubic")(0.5); got != 0.875 {
		t.Errorf("ease-out-cubic(0.5) = %v, want 0.875", got)
	}
}
