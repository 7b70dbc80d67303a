package game

import (
	"log"

	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 为每个实体播放各自的提示音（同一声音可以同时在多个实体上播放）
//   - 实体被移除时停止它的提示音
//   - 应用 SettingsManager 中的音量和开关
//
// 音频上下文为 nil 时（无头运行、测试）所有播放请求都被忽略。
type AudioManager struct {
	resourceManager *ResourceManager               // 资源管理器（提供解码后的 PCM）
	settingsManager *SettingsManager               // 设置管理器（音量与开关，可为 nil）
	cuePlayers      map[ecs.EntityID]*audio.Player // 实体 -> 正在使用的播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		cuePlayers:      make(map[ecs.EntityID]*audio.Player),
	}
}

// PlayCue 为实体播放一次提示音
//
// 同一实体已有的提示音会被替换。声音文件缺失时使用合成提示音。
// 返回是否真正开始播放；失败不影响游戏逻辑。
func (am *AudioManager) PlayCue(owner ecs.EntityID, soundPath string) bool {
	am.reapFinished()

	if !am.SoundEnabled() {
		return false
	}

	ctx := am.resourceManager.AudioContext()
	if ctx == nil {
		return false
	}

	pcm := am.resourceManager.GetSoundPCM(soundPath)
	if pcm == nil {
		pcm = am.resourceManager.LoadSoundOrSynth(soundPath)
	}
	if len(pcm) == 0 {
		return false
	}

	am.StopCue(owner)

	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.cuePlayers[owner] = player

	return true
}

// StopCue 停止实体的提示音（没有时什么都不做）
func (am *AudioManager) StopCue(owner ecs.EntityID) {
	player, exists := am.cuePlayers[owner]
	if !exists {
		return
	}
	player.Pause()
	if err := player.Close(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to close cue player for entity %d: %v", owner, err)
	}
	delete(am.cuePlayers, owner)
}

// StopAll 停止所有提示音
func (am *AudioManager) StopAll() {
	for owner := range am.cuePlayers {
		am.StopCue(owner)
	}
}

// ActiveCues 返回仍持有播放器的实体数量
func (am *AudioManager) ActiveCues() int {
	return len(am.cuePlayers)
}

// SoundEnabled 提示音是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundEnabled
	}
	return true
}

// ToggleSound 切换提示音开关并返回新的状态
//
// 关闭时立即停止所有正在播放的提示音。
// 仅修改内存中的设置，持久化由调用方负责。
func (am *AudioManager) ToggleSound() bool {
	enabled := !am.SoundEnabled()
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
	}
	if !enabled {
		am.StopAll()
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetSoundVolume 设置提示音音量，立即应用到正在播放的提示音
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.cuePlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// VolumeStep +/- 键每次调节的音量
const VolumeStep = 0.1

// AdjustSoundVolume 按 delta 调节音量并返回调节后的值(截断到 0.0 ~ 1.0)
// 仅修改内存中的设置，持久化由调用方负责。
func (am *AudioManager) AdjustSoundVolume(delta float64) float64 {
	am.SetSoundVolume(am.getSoundVolume() + delta)
	volume := am.getSoundVolume()
	log.Printf("[AudioManager] Sound volume: %.1f", volume)
	return volume
}

// GetSoundVolume 获取当前提示音音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// reapFinished 释放已经播放完的播放器
func (am *AudioManager) reapFinished() {
	for owner, player := range am.cuePlayers {
		if !player.IsPlaying() {
			am.StopCue(owner)
		}
	}
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
