package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的一个画面
type Scene interface {
	// Update 执行一个 tick,deltaMs 为 tick 时长(毫秒)
	Update(deltaMs float64)
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口:窗口关闭前需要落盘的场景实现它
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败,程序仍会退出
	SaveOnExit() bool
}
