package utils

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestFrameRect 测试整数与小数帧宽的源矩形
func TestFrameRect(t *testing.T) {
	tests := []struct {
		name   string
		frame  int
		fw, fh float64
		want   image.Rectangle
	}{
		{"第一帧", 0, 492, 409, image.Rect(0, 0, 492, 409)},
		{"第二帧", 1, 492, 409, image.Rect(492, 0, 984, 409)},
		{"小数帧宽第一帧", 0, 624.5, 517, image.Rect(0, 0, 624, 517)},
		{"小数帧宽第二帧", 1, 624.5, 517, image.Rect(624, 0, 1249, 517)},
		{"小数帧宽第四帧", 3, 624.5, 517, image.Rect(1873, 0, 2498, 517)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameRect(tt.frame, tt.fw, tt.fh); got != tt.want {
				t.Errorf("FrameRect(%d) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

// TestFrameImage 测试帧子图与越界处理
func TestFrameImage(t *testing.T) {
	sheet := ebiten.NewImage(40, 10)

	frame := FrameImage(sheet, 1, 20, 10)
	if frame == nil {
		t.Fatal("frame 1 should exist")
	}
	if frame.Bounds() != image.Rect(20, 0, 40, 10) {
		t.Errorf("frame bounds: got %v", frame.Bounds())
	}

	if FrameImage(sheet, 2, 20, 10) != nil {
		t.Error("frame beyond the sheet should be nil")
	}
	if FrameImage(nil, 0, 20, 10) != nil {
		t.Error("nil sheet should give nil frame")
	}
}
