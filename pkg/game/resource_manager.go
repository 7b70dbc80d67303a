package game

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	sfx "github.com/gonewx/skyhunt/internal/audio"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSampleRate 没有音频上下文时使用的采样率
const DefaultSampleRate = 48000

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, decoded sound data and
// text faces, ensuring that resources are loaded only once and reused throughout the game.
//
// Missing assets are not fatal: LoadImageOrPlaceholder draws a generated sprite
// sheet, and LoadSoundOrSynth renders a synthesized tone instead.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	img := rm.LoadImageOrPlaceholder("assets/images/bat.png", 492, 409, 2)
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	soundCache    map[string][]byte            // Cache for decoded PCM: path -> 16-bit LE stereo
	audioContext  *audio.Context               // Audio context, may be nil in headless runs
	sampleRate    int                          // Target sample rate for decoded sounds
	fontSource    *text.GoTextFaceSource       // Lazily parsed Go Regular font
	fontFaceCache map[float64]*text.GoTextFace // Cache for text faces: size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil; decoded sounds then use DefaultSampleRate.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	sampleRate := DefaultSampleRate
	if audioContext != nil {
		sampleRate = audioContext.SampleRate()
	}

	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		audioContext:  audioContext,
		sampleRate:    sampleRate,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// AudioContext 返回音频上下文（可能为 nil）
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// SampleRate 返回解码声音使用的采样率
func (rm *ResourceManager) SampleRate() int {
	return rm.sampleRate
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file does not exist, cannot be opened or cannot be decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	// Open the image file
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Convert to Ebitengine image
	ebitenImg := ebiten.NewImageFromImage(img)

	// Store in cache
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageOrPlaceholder 加载精灵图，失败时生成占位精灵图
//
// 占位图为横向排列的 frames 帧，每帧 frameWidth x frameHeight，
// 颜色由路径决定，同一路径总是得到相同的颜色。
// 占位图同样进入缓存，之后的 GetImage 会返回它。
func (rm *ResourceManager) LoadImageOrPlaceholder(path string, frameWidth, frameHeight float64, frames int) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	placeholder := NewPlaceholderSheet(frameWidth, frameHeight, frames, placeholderColor(path))
	rm.imageCache[path] = placeholder
	return placeholder
}

// NewPlaceholderSheet 绘制一张占位精灵图
//
// 每一帧是一个圆，半径随帧号略微变化，使动画可见。
func NewPlaceholderSheet(frameWidth, frameHeight float64, frames int, clr color.RGBA) *ebiten.Image {
	if frames < 1 {
		frames = 1
	}
	w := int(math.Ceil(frameWidth)) * frames
	h := int(math.Ceil(frameHeight))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := ebiten.NewImage(w, h)
	radius := float32(math.Min(frameWidth, frameHeight) / 2)
	for i := 0; i < frames; i++ {
		cx := float32(frameWidth*float64(i) + frameWidth/2)
		cy := float32(frameHeight / 2)
		r := radius * (0.75 + 0.25*float32(i%2))
		vector.DrawFilledCircle(img, cx, cy, r, clr, true)
	}
	return img
}

// LoadLayerOrPlaceholder 加载视差层图片，失败时生成一条山丘剪影
//
// depth 为从远到近的层序号，越近的层山丘越高、越不透明。
func (rm *ResourceManager) LoadLayerOrPlaceholder(path string, width, height float64, depth int) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}

	log.Printf("[ResourceManager] Warning: %v (using layer placeholder)", err)
	placeholder := NewLayerPlaceholder(width, height, depth, placeholderColor(path))
	rm.imageCache[path] = placeholder
	return placeholder
}

// layerStripWidth 山丘剪影的竖条宽度
const layerStripWidth = 8

// NewLayerPlaceholder 绘制 width x height 的透明图，底部为起伏的山丘
//
// 山丘轮廓在 width 内是整数个周期，两份拷贝首尾相接时没有接缝。
func NewLayerPlaceholder(width, height float64, depth int, clr color.RGBA) *ebiten.Image {
	w := max(1, int(math.Ceil(width)))
	h := max(1, int(math.Ceil(height)))
	img := ebiten.NewImage(w, h)

	clr.A = uint8(min(255, 110+50*depth))
	baseline := height * math.Min(0.9, 0.55+0.12*float64(depth))
	amplitude := height * 0.08
	cycles := float64(depth + 2)

	for x := 0; x < w; x += layerStripWidth {
		phase := 2 * math.Pi * cycles * float64(x) / float64(w)
		top := baseline - amplitude*math.Sin(phase)
		vector.DrawFilledRect(img, float32(x), float32(top), layerStripWidth, float32(height-top), clr, false)
	}
	return img
}

// placeholderColor 由路径哈希出一个稳定的颜色
func placeholderColor(path string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(path))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(80 + sum%160),
		G: uint8(80 + (sum>>8)%160),
		B: uint8(80 + (sum>>16)%160),
		A: 255,
	}
}

// LoadSoundPCM 加载并解码声音文件为 16 位小端立体声 PCM
//
// 支持 .wav / .mp3 / .ogg（Ebitengine 解码器）和 .flac（beep 解码器）。
// 结果按路径缓存。
func (rm *ResourceManager) LoadSoundPCM(path string) ([]byte, error) {
	if pcm, exists := rm.soundCache[path]; exists {
		return pcm, nil
	}

	// Read the entire file into memory to avoid file handle issues
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}

	pcm, err := rm.decodeSound(path, data)
	if err != nil {
		return nil, err
	}

	rm.soundCache[path] = pcm
	return pcm, nil
}

// decodeSound 按扩展名选择解码器
func (rm *ResourceManager) decodeSound(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var stream io.Reader
	switch ext {
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(rm.sampleRate, bytes.NewReader(data))
		if err != nil {
			// Ebitengine 只接受 8/16 位 PCM，其余格式交给 beep
			pcm, beepErr := sfx.DecodeWAV(bytes.NewReader(data), rm.sampleRate)
			if beepErr != nil {
				return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
			}
			return pcm, nil
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(rm.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(rm.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decoded
	case ".flac":
		pcm, err := sfx.DecodeFLAC(bytes.NewReader(data), rm.sampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FLAC audio %s: %w", path, err)
		}
		return pcm, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg, .flac)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}

// LoadSoundOrSynth 加载声音，失败时使用合成提示音
//
// 合成也失败时返回 nil，调用方应把它当作静音。
func (rm *ResourceManager) LoadSoundOrSynth(path string) []byte {
	pcm, err := rm.LoadSoundPCM(path)
	if err == nil {
		return pcm
	}

	log.Printf("[ResourceManager] Warning: %v (using synthesized tone)", err)
	pcm, err = sfx.Synthesize(sfx.ToneForSound(path), rm.sampleRate)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to synthesize tone for %s: %v", path, err)
		return nil
	}

	rm.soundCache[path] = pcm
	return pcm
}

// GetSoundPCM 返回已缓存的 PCM 数据，未加载时返回 nil
func (rm *ResourceManager) GetSoundPCM(path string) []byte {
	return rm.soundCache[path]
}

// FontFace 返回指定字号的 Go Regular 字体
func (rm *ResourceManager) FontFace(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source: rm.fontSource,
		Size:   size,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
