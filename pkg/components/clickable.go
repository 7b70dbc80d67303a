package components

// ClickableComponent 标记实体可以被点击/射击命中
// 命中区域由 PositionComponent 与 SpriteSheetComponent 的绘制尺寸决定
type ClickableComponent struct {
	IsEnabled bool // 是否可以被命中
}
