package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteSheetComponent 存储横向排列的精灵表
// 第 i 帧位于 [i*FrameWidth, (i+1)*FrameWidth) 的源矩形内
type SpriteSheetComponent struct {
	Image       *ebiten.Image // 精灵表图片，可为 nil（仅逻辑测试时）
	FrameWidth  float64       // 单帧宽度（像素，可为小数）
	FrameHeight float64       // 单帧高度（像素）
	// Size 尺寸除数：绘制尺寸 = 帧尺寸 / Size
	Size float64
}

// DrawnWidth 返回绘制到屏幕上的宽度
func (s *SpriteSheetComponent) DrawnWidth() float64 {
	return s.FrameWidth / s.Size
}

// DrawnHeight 返回绘制到屏幕上的高度
func (s *SpriteSheetComponent) DrawnHeight() float64 {
	return s.FrameHeight / s.Size
}
