package scenes

import "github.com/gonewx/skyhunt/pkg/utils"

// FrameInput 一个 tick 内场景需要的输入
//
// 由 utils.GetInputState 转换而来;测试与无头模拟器直接构造它。
type FrameInput struct {
	// Click 本 tick 指针刚按下(鼠标左键或触摸)
	Click bool
	X, Y  float64

	// Touch 检测到触摸设备
	Touch bool

	// 增强变体:方向键(按住)与开火键(刚按下)
	Left, Right, Up, Down bool
	Fire                  bool
}

// FrameInputFromState 把轮询得到的输入状态转换为 FrameInput
func FrameInputFromState(state utils.InputState) FrameInput {
	return FrameInput{
		Click: state.JustPressed,
		X:     float64(state.X),
		Y:     float64(state.Y),
		Touch: state.IsTouching,
		Left:  state.Left,
		Right: state.Right,
		Up:    state.Up,
		Down:  state.Down,
		Fire:  state.Fire,
	}
}
