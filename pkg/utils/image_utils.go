package utils

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRect 返回横向精灵表中第 frame 帧的源矩形
//
// 帧宽可以是小数（如 624.5），起止坐标分别向下取整，
// 相邻两帧之间不会重叠也不会留缝。
func FrameRect(frame int, frameWidth, frameHeight float64) image.Rectangle {
	x0 := int(math.Floor(float64(frame) * frameWidth))
	x1 := int(math.Floor(float64(frame+1) * frameWidth))
	return image.Rect(x0, 0, x1, int(math.Ceil(frameHeight)))
}

// CropImage creates a sub-image from the source image.
// The rectangle is clamped to the source bounds.
//
// Returns nil if src is nil or the clamped region is empty.
func CropImage(src *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	if src == nil {
		return nil
	}

	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil
	}

	return src.SubImage(rect).(*ebiten.Image)
}

// FrameImage 返回精灵表中第 frame 帧的子图，超出图片范围时返回 nil
func FrameImage(sheet *ebiten.Image, frame int, frameWidth, frameHeight float64) *ebiten.Image {
	return CropImage(sheet, FrameRect(frame, frameWidth, frameHeight))
}
