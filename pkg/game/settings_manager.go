package game

import (
	"fmt"
	"log"

	"github.com/decker502/folio/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好设置
// 主题与创意模式开关在两次启动之间保留
type Settings struct {
	Theme        string `yaml:"theme"`        // 当前页面主题（可为空：未选择）
	CreativeMode bool   `yaml:"creativeMode"` // 启动时是否进入创意模式
	Trail        string `yaml:"trail"`        // 轨迹粒子变体，空表示使用效果配置中的默认值
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Theme:        "",
		CreativeMode: false,
		Trail:        "",
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings      // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误：记录警告并使用默认设置。
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
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
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

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 旧版本或手工编辑的非法值回退为默认
	if loaded.Trail != "" && loaded.Trail != config.TrailOrbit && loaded.Trail != config.TrailFree {
		log.Printf("[SettingsManager] Warning: unknown trail %q, ignoring", loaded.Trail)
		loaded.Trail = ""
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
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
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// Persistent 报告设置是否会被持久化
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// SetTheme 设置页面主题
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTheme(theme string) {
	sm.settings.Theme = theme
}

// SetCreativeMode 设置创意模式开关
func (sm *SettingsManager) SetCreativeMode(enabled bool) {
	sm.settings.CreativeMode = enabled
}

// SetTrail 设置轨迹粒子变体（"orbit"、"free" 或空）
func (sm *SettingsManager) SetTrail(trail string) error {
	if trail != "" && trail != config.TrailOrbit && trail != config.TrailFree {
		return fmt.Errorf("unknown trail %q", trail)
	}
	sm.settings.Trail = trail
	return nil
}

// ApplyTo 将设置覆盖到效果配置上（只覆盖用户显式选择的项）
func (sm *SettingsManager) ApplyTo(cfg *config.EffectsConfig) {
	if sm.settings.Trail != "" {
		cfg.Creative.Trail = sm.settings.Trail
	}
}
