package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景,把 ebiten 的 Update/Draw 转发给它
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switch to %s", sceneName(scene))
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SaveOnExit 在游戏关闭时让当前场景保存状态
//
// 返回 false 仅表示保存失败，调用方仍应继续退出流程
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !saveable.SaveOnExit() {
		log.Printf("[SceneManager] Warning: %s failed to save on exit", sceneName(sm.currentScene))
		return false
	}
	return true
}

// Update 推进活动场景一个 tick
func (sm *SceneManager) Update(deltaMs float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaMs)
}

// Draw 绘制活动场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Draw(screen)
}

func sceneName(scene Scene) string {
	if scene == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", scene)
}
