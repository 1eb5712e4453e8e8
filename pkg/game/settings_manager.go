package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DemoSettings 演示程序的用户偏好
// 只保存开关类偏好，不保存卡片堆进度
type DemoSettings struct {
	FadeOnSwipe     bool `yaml:"fadeOnSwipe"`     // 拖拽时淡出
	Loop            bool `yaml:"loop"`            // 卡片循环
	DisableGestures bool `yaml:"disableGestures"` // 禁用拖拽（只能用键盘）
	Fullscreen      bool `yaml:"fullscreen"`      // 启动时是否全屏
}

// SettingsManager 设置管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     DemoSettings   // 没有存档时使用的设置（通常来自 deck.yaml）
	settings     *DemoSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 没有存档时使用的设置
//
// 加载失败不是致命错误，使用 defaults 并记录警告。
func NewSettingsManager(gdataManager *gdata.Manager, defaults DemoSettings) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     defaults,
	}
	sm.resetToDefaults()

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) resetToDefaults() {
	d := sm.defaults
	sm.settings = &d
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或没有存档时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DemoSettings {
	return sm.settings
}

// ToggleFadeOnSwipe 切换拖拽淡出，返回新值
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) ToggleFadeOnSwipe() bool {
	sm.settings.FadeOnSwipe = !sm.settings.FadeOnSwipe
	return sm.settings.FadeOnSwipe
}

// ToggleLoop 切换卡片循环，返回新值
func (sm *SettingsManager) ToggleLoop() bool {
	sm.settings.Loop = !sm.settings.Loop
	return sm.settings.Loop
}

// ToggleDisableGestures 切换拖拽禁用，返回新值
func (sm *SettingsManager) ToggleDisableGestures() bool {
	sm.settings.DisableGestures = !sm.settings.DisableGestures
	return sm.settings.DisableGestures
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
