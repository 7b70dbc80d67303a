package components

// AnimationComponent 管理基于精灵表的帧动画
// 计时单位为毫秒
type AnimationComponent struct {
	FrameCount   int     // 动画总帧数
	FrameSpeedMs float64 // 每帧持续时间(毫秒)，累计超过该值时切换到下一帧
	Accumulator  float64 // 当前帧计时器(毫秒)
	CurrentFrame int     // 当前显示的帧索引(0-based)
	IsLooping    bool    // 是否循环播放
	IsFinished   bool    // 动画是否已完成(仅对非循环动画有效)
}
