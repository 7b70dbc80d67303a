package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 持久化的用户设置(只有声音和显示两项)
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// gdata 中设置的存放位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 在内存中持有设置,按需写回 gdata
//
// gdataManager 为 nil 时为降级模式:设置照常修改,但不会持久化。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     GameSettings
	dirty        bool // 自上次加载/保存后有修改
}

// NewSettingsManager 创建设置管理器并立即加载
//
// 加载失败不是致命错误，此时使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 读取设置,任何失败都会先回退到默认值再返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = *DefaultSettings()
	sm.dirty = false

	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded, err := decodeSettings(data)
	if err != nil {
		return err
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded: sound=%v volume=%.2f fullscreen=%v",
		loaded.SoundEnabled, loaded.SoundVolume, loaded.Fullscreen)
	return nil
}

// decodeSettings 以默认值为底解析 YAML,缺失字段保持默认
func decodeSettings(data []byte) (GameSettings, error) {
	loaded := *DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return GameSettings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	return loaded, nil
}

// Save 把有改动的设置写回 gdata;未修改或降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil || !sm.dirty {
		return nil
	}

	data, err := yaml.Marshal(&sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.dirty = false
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 返回当前设置,调用方只读
func (sm *SettingsManager) GetSettings() *GameSettings {
	return &sm.settings
}

// IsDirty 是否有尚未保存的修改
func (sm *SettingsManager) IsDirty() bool {
	return sm.dirty
}

// SetSoundVolume 设置提示音音量,超出 0.0 ~ 1.0 的值被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	if sm.settings.SoundVolume != volume {
		sm.settings.SoundVolume = volume
		sm.dirty = true
	}
}

// SetSoundEnabled 设置提示音开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	if sm.settings.SoundEnabled != enabled {
		sm.settings.SoundEnabled = enabled
		sm.dirty = true
	}
}

// SetFullscreen 设置启动时是否全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	if sm.settings.Fullscreen != enabled {
		sm.settings.Fullscreen = enabled
		sm.dirty = true
	}
}

func clampVolume(volume float64) float64 {
	return max(0, min(1, volume))
}
