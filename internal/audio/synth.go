package audio

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// ToneKind 合成音色
type ToneKind int

const (
	// ToneSine 正弦音
	ToneSine ToneKind = iota
	// ToneNoise 衰减噪声（爆炸）
	ToneNoise
)

// Tone 描述一段合成提示音
// 当音频资源缺失或无法解码时，用它代替原始提示音
type Tone struct {
	Kind     ToneKind
	Freq     float64 // 仅 ToneSine 使用
	Duration time.Duration
	Volume   float64 // 0.0 ~ 1.0
}

// ToneForSound 根据音效文件名选择一段替代音
func ToneForSound(path string) Tone {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	switch {
	case strings.Contains(name, "boom"):
		return Tone{Kind: ToneNoise, Duration: 350 * time.Millisecond, Volume: 0.6}
	case strings.Contains(name, "bat"):
		return Tone{Kind: ToneSine, Freq: 1320, Duration: 120 * time.Millisecond, Volume: 0.4}
	case strings.Contains(name, "bee"):
		return Tone{Kind: ToneSine, Freq: 220, Duration: 300 * time.Millisecond, Volume: 0.4}
	case strings.Contains(name, "dragon"):
		return Tone{Kind: ToneSine, Freq: 90, Duration: 450 * time.Millisecond, Volume: 0.5}
	default:
		return Tone{Kind: ToneSine, Freq: 660, Duration: 100 * time.Millisecond, Volume: 0.4}
	}
}

// Synthesize 渲染一段合成提示音为 PCM
func Synthesize(t Tone, sampleRate int) ([]byte, error) {
	if t.Duration <= 0 {
		return nil, fmt.Errorf("tone duration must be positive, got %v", t.Duration)
	}

	sr := beep.SampleRate(sampleRate)
	frames := sr.N(t.Duration)

	var src beep.Streamer
	switch t.Kind {
	case ToneNoise:
		src = NewNoiseBurst(sr, t.Duration)
	default:
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create sine tone: %w", err)
		}
		src = sine
	}

	shaped := NewFadeOut(beep.Take(frames, src), frames)
	return RenderPCM(withVolume(shaped, t.Volume), frames)
}

// withVolume 把线性音量换算成 effects.Volume 的 log2 刻度
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// FadeOut 线性淡出包装，避免提示音结尾的爆音
type FadeOut struct {
	s     beep.Streamer
	total int
	pos   int
}

// NewFadeOut 创建在 total 帧内线性淡出的包装
func NewFadeOut(s beep.Streamer, total int) *FadeOut {
	return &FadeOut{s: s, total: total}
}

func (f *FadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.total > 0 {
			gain = 1.0 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *FadeOut) Err() error {
	return f.s.Err()
}

// NoiseBurst 生成带低频隆隆声的衰减噪声
type NoiseBurst struct {
	sr      beep.SampleRate
	samples int
	pos     int
	rng     *rand.Rand
}

// NewNoiseBurst 创建持续 d 的噪声生成器
func NewNoiseBurst(sr beep.SampleRate, d time.Duration) *NoiseBurst {
	return &NoiseBurst{
		sr:      sr,
		samples: sr.N(d),
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (g *NoiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 指数衰减包络
		env := math.Exp(-6 * float64(g.pos) / float64(g.samples))
		rumble := 0.5 * math.Sin(2*math.Pi*55*t)
		noise := g.rng.Float64()*2 - 1
		sample := env * (0.7*noise + 0.3*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurst) Err() error {
	return nil
}
