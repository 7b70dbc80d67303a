package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawCenteredText 以 (cx, y) 为水平中心绘制一行文本
// y 为文本顶部
func DrawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

// DrawText 以 (x, y) 为左上角绘制一行文本
func DrawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// MeasureTextWidth 返回文本的绘制宽度（像素）
func MeasureTextWidth(str string, face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	width, _ := text.Measure(str, face, 0)
	return width
}
