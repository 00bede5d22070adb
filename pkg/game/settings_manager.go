package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 动画速度范围
const (
	MinAnimationSpeed = 0.1
	MaxAnimationSpeed = 10.0
)

// DemoSettings 演示程序的用户设置
type DemoSettings struct {
	// AnimationSpeed 动画速度倍率（1.0 为正常速度，< 1 为慢放）
	AnimationSpeed float64 `yaml:"animationSpeed"`
	// ShowGrid 是否绘制网格线
	ShowGrid bool `yaml:"showGrid"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DemoSettings {
	return &DemoSettings{
		AnimationSpeed: 1.0,
		ShowGrid:       true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DemoSettings
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
//
// 加载失败不是致命错误，会使用默认设置并记录警告。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或设置不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.AnimationSpeed = clampSpeed(loaded.AnimationSpeed)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (speed %.2f, grid %v)", loaded.AnimationSpeed, loaded.ShowGrid)
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

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DemoSettings {
	return sm.settings
}

// SetAnimationSpeed 设置动画速度倍率
// 限制在 [MinAnimationSpeed, MaxAnimationSpeed]，需调用 Save() 持久化
func (sm *SettingsManager) SetAnimationSpeed(speed float64) {
	sm.settings.AnimationSpeed = clampSpeed(speed)
}

// SetShowGrid 设置是否绘制网格线，需调用 Save() 持久化
func (sm *SettingsManager) SetShowGrid(show bool) {
	sm.settings.ShowGrid = show
}

// clampSpeed 限制速度倍率，0 或负数视为正常速度
func clampSpeed(speed float64) float64 {
	if speed <= 0 {
		return 1.0
	}
	if speed < MinAnimationSpeed {
		return MinAnimationSpeed
	}
	if speed > MaxAnimationSpeed {
		return MaxAnimationSpeed
	}
	return speed
}
