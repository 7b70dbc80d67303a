// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标、触摸和键盘输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool

	// 方向键（按住）
	Left, Right, Up, Down bool
	// 开火键（空格，刚按下）
	Fire bool

	// M 键切换提示音
	ToggleSound bool
	// F11 切换全屏
	ToggleFullscreen bool
	// +/- 调节音量
	VolumeUp, VolumeDown bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := pointerState()

	state.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	state.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	state.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	state.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	state.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	state.ToggleSound = inpututil.IsKeyJustPressed(ebiten.KeyM)
	state.ToggleFullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	state.VolumeUp = inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)
	state.VolumeDown = inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)

	return state
}

// pointerState 读取鼠标与触摸状态
func pointerState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		// 有新的触摸事件
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// IsTouchDevice 检测当前是否为触摸设备
// 移动端构建总是触摸设备；桌面端通过检查是否有活动的触摸来判断
func IsTouchDevice() bool {
	if IsMobile() {
		return true
	}
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}
