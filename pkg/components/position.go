package components

// PositionComponent 存储实体的位置（左上角，屏幕坐标）
type PositionComponent struct {
	X float64
	Y float64
}
