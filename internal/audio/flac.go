package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
)

// resampleQuality beep.Resample 的插值质量（1-64）
const resampleQuality = 4

// DecodeFLAC 解码 FLAC 数据并重采样到 sampleRate
//
// Ebitengine 自带的解码器不支持 FLAC，这里交给 beep 处理。
func DecodeFLAC(r io.Reader, sampleRate int) ([]byte, error) {
	streamer, format, err := flac.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}
	defer streamer.Close()

	return renderAt(streamer, format.SampleRate, sampleRate)
}

// renderAt 在需要时先重采样再渲染
func renderAt(s beep.Streamer, from beep.SampleRate, sampleRate int) ([]byte, error) {
	to := beep.SampleRate(sampleRate)
	if from != to {
		s = beep.Resample(resampleQuality, from, to, s)
	}

	pcm, err := RenderPCM(s, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to render PCM: %w", err)
	}
	return pcm, nil
}
