package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// wavGain 补偿 beep wav 解码器的缩放:它把整数采样除以 1<<16-1,
// 输出只落在 [-0.5, 0.5],需要再放大一倍
const wavGain = 1

// DecodeWAV 用 beep 解码 WAV 并重采样到 sampleRate
//
// 作为 Ebitengine wav 解码器的后备，覆盖 24 位和浮点格式等它不接受的文件。
func DecodeWAV(r io.Reader, sampleRate int) ([]byte, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV: %w", err)
	}
	defer streamer.Close()

	return renderAt(&effects.Gain{Streamer: streamer, Gain: wavGain}, format.SampleRate, sampleRate)
}
