package components

// ReticleComponent 键盘准星（增强变体）
// 准星中心由 PositionComponent 表示
type ReticleComponent struct {
	Speed   float64 // 方向键移动速度（像素/tick）
	Radius  float64
	Visible bool // 触摸设备上隐藏并禁用
}
