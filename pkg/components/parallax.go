package components

import "github.com/hajimehoshi/ebiten/v2"

// ParallaxLayerComponent 视差背景层
//
// 同一张图片的两份拷贝水平相邻排列，以固定速度向左滚动；
// 任一份完全移出屏幕左侧时被放到另一份之后，两份之间始终相距 Width。
type ParallaxLayerComponent struct {
	Image *ebiten.Image
	Width float64 // 图片宽度（两份拷贝的间距）
	Speed float64 // 向左滚动速度（像素/tick）
	X1    float64
	X2    float64
}
