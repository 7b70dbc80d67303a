// Package audio 提供提示音的解码与合成
//
// 游戏内的播放使用 Ebitengine 的 audio.Player，它接受 16-bit 有符号、
// 小端、双声道的 PCM 数据。本包借助 beep 的流式接口把 FLAC 解码、
// 重采样和程序化合成统一渲染成这种格式。
package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// BytesPerFrame 每个双声道 16-bit 采样帧占用的字节数
const BytesPerFrame = 4

// renderChunk 单次从 Streamer 读取的采样帧数
const renderChunk = 512

// RenderPCM 将 Streamer 渲染为 16-bit 小端双声道 PCM
//
// maxFrames <= 0 表示一直读到流结束；否则最多渲染 maxFrames 帧，
// 用于截断无限流（如振荡器）。
func RenderPCM(s beep.Streamer, maxFrames int) ([]byte, error) {
	out := make([]byte, 0, renderChunk*BytesPerFrame)
	buf := make([][2]float64, renderChunk)
	rendered := 0

	for maxFrames <= 0 || rendered < maxFrames {
		want := len(buf)
		if maxFrames > 0 && maxFrames-rendered < want {
			want = maxFrames - rendered
		}

		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		rendered += n

		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// toInt16 把 [-1, 1] 范围的浮点采样转换为 int16，超出范围的值被截断
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
