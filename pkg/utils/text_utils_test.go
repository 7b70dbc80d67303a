package utils

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: 40}
}

// TestMeasureTextWidth 测试文本宽度随内容增长
func TestMeasureTextWidth(t *testing.T) {
	face := testFace(t)

	short := MeasureTextWidth("Score: 1", face)
	long := MeasureTextWidth("Score: 1000000", face)

	if short <= 0 {
		t.Errorf("width should be positive, got %v", short)
	}
	if long <= short {
		t.Errorf("longer text should be wider: %v <= %v", long, short)
	}
	if MeasureTextWidth("", face) != 0 {
		t.Error("empty text should have zero width")
	}
	if MeasureTextWidth("Game Over.", nil) != 0 {
		t.Error("nil face should measure zero")
	}
}
