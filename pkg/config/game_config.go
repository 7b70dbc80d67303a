package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/skyhunt/pkg/embedded"
)

// Variant 游戏变体
type Variant string

const (
	// VariantClassic 经典变体：纯色/单图背景，仅鼠标点击
	VariantClassic Variant = "classic"
	// VariantEnhanced 增强变体：多层视差背景 + 键盘准星射击
	VariantEnhanced Variant = "enhanced"
)

// 敌人行为名称（对应 components.BehaviorType）
const (
	BehaviorNameBat    = "bat"
	BehaviorNameBee    = "bee"
	BehaviorNameDragon = "dragon"
)

// GameConfig 游戏配置
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Variant    Variant          `yaml:"variant"`
	Audio      AudioConfig      `yaml:"audio"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Enemies    []EnemyConfig    `yaml:"enemies"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Background BackgroundConfig `yaml:"background"`
	Reticle    ReticleConfig    `yaml:"reticle"`
}

// WindowConfig 窗口与逻辑屏幕尺寸（启动后不再改变）
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	SampleRate int `yaml:"sampleRate"`
}

// SpawnConfig 敌人生成与难度规则
//
// 所有时间单位为毫秒。
type SpawnConfig struct {
	// InitialIntervalMs 每局开始时的生成间隔
	InitialIntervalMs float64 `yaml:"initialIntervalMs"`
	// IntervalStepMs 每达到 ScoreStep 分时缩短的间隔
	IntervalStepMs float64 `yaml:"intervalStepMs"`
	// MinIntervalMs 间隔下限；间隔不大于该值后改为加速敌人
	MinIntervalMs float64 `yaml:"minIntervalMs"`
	// ScoreStep 难度提升的分数步长
	ScoreStep int `yaml:"scoreStep"`
	// SpeedBoost 间隔到达下限后，每个分数步长给被击中敌人类型增加的水平速度（像素/tick）
	SpeedBoost float64 `yaml:"speedBoost"`
}

// EnemyConfig 单种敌人的参数
type EnemyConfig struct {
	// Kind 敌人类型ID（如 "bat"）
	Kind string `yaml:"kind"`
	// Behavior 运动策略名称: bat | bee | dragon
	Behavior string `yaml:"behavior"`

	Sprite      string  `yaml:"sprite"`
	FrameWidth  float64 `yaml:"frameWidth"`
	FrameHeight float64 `yaml:"frameHeight"`
	FrameCount  int     `yaml:"frameCount"`
	AnimationMs float64 `yaml:"animationMs"`
	Cue         string  `yaml:"cue"`

	// SizeFactor 尺寸除数的下限，实际值为 SizeFactor + rand*SizeJitter
	SizeFactor float64 `yaml:"sizeFactor"`
	SizeJitter float64 `yaml:"sizeJitter"`

	// SpeedMin/SpeedMax 水平速度范围（像素/tick）
	SpeedMin float64 `yaml:"speedMin"`
	SpeedMax float64 `yaml:"speedMax"`

	Motion MotionConfig `yaml:"motion"`
}

// MotionConfig 运动策略参数，仅与 Behavior 对应的字段生效
type MotionConfig struct {
	// bat
	TurnIntervalMs float64 `yaml:"turnIntervalMs"`
	TurnSpread     float64 `yaml:"turnSpread"`

	// bee
	MaxAngle      float64 `yaml:"maxAngle"`
	MaxAngleSpeed float64 `yaml:"maxAngleSpeed"`
	MaxCurve      float64 `yaml:"maxCurve"`

	// dragon
	SwipeMinMs         float64 `yaml:"swipeMinMs"`
	SwipeJitterMs      float64 `yaml:"swipeJitterMs"`
	MaxVelocityY       float64 `yaml:"maxVelocityY"`
	MoveBudgetMin      float64 `yaml:"moveBudgetMin"`
	MoveBudgetJitter   float64 `yaml:"moveBudgetJitter"`
	ResetBudgetJitter  float64 `yaml:"resetBudgetJitter"`
	BudgetReductionMin float64 `yaml:"budgetReductionMin"`
	BudgetReductionJit float64 `yaml:"budgetReductionJitter"`
}

// ExplosionConfig 爆炸效果参数
type ExplosionConfig struct {
	Sprite      string  `yaml:"sprite"`
	FrameWidth  float64 `yaml:"frameWidth"`
	FrameHeight float64 `yaml:"frameHeight"`
	// FrameCount 播放的帧数；帧索引到达该值时爆炸被删除
	FrameCount int     `yaml:"frameCount"`
	StepMs     float64 `yaml:"stepMs"`
	Cue        string  `yaml:"cue"`
}

// BackgroundConfig 背景配置
type BackgroundConfig struct {
	// Image 经典变体的单张背景图（可为空，使用纯色）
	Image string `yaml:"image"`
	// Layers 增强变体的视差层（从远到近）
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig 单个视差层
type LayerConfig struct {
	Image string `yaml:"image"`
	// Width 图片宽度（像素）；两份拷贝之间的固定间距
	Width float64 `yaml:"width"`
	// Speed 向左滚动速度（像素/tick）
	Speed float64 `yaml:"speed"`
}

// ReticleConfig 准星配置（增强变体）
type ReticleConfig struct {
	// Speed 方向键移动速度（像素/tick）
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// DefaultGameConfig 返回与 data/game.yaml 一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window:  WindowConfig{Width: 1280, Height: 720, Title: "Skyhunt"},
		Variant: VariantClassic,
		Audio:   AudioConfig{SampleRate: 48000},
		Spawn: SpawnConfig{
			InitialIntervalMs: 2000,
			IntervalStepMs:    200,
			MinIntervalMs:     400,
			ScoreStep:         5,
			SpeedBoost:        5,
		},
		Enemies: []EnemyConfig{
			{
				Kind: "bat", Behavior: BehaviorNameBat,
				Sprite: "assets/images/bat.png", FrameWidth: 492, FrameHeight: 409, FrameCount: 2,
				AnimationMs: 100, Cue: "assets/audio/bat_sound.flac",
				SizeFactor: 3, SizeJitter: 3, SpeedMin: 1, SpeedMax: 3,
				Motion: MotionConfig{TurnIntervalMs: 100, TurnSpread: 6.2},
			},
			{
				Kind: "bee", Behavior: BehaviorNameBee,
				Sprite: "assets/images/bee.png", FrameWidth: 275, FrameHeight: 284, FrameCount: 13,
				AnimationMs: 30, Cue: "assets/audio/bee.wav",
				SizeFactor: 2, SizeJitter: 3, SpeedMin: 1, SpeedMax: 3,
				Motion: MotionConfig{MaxAngle: 2, MaxAngleSpeed: 1, MaxCurve: 7},
			},
			{
				Kind: "dragon", Behavior: BehaviorNameDragon,
				Sprite: "assets/images/dragon.png", FrameWidth: 817, FrameHeight: 679, FrameCount: 4,
				AnimationMs: 200, Cue: "assets/audio/dragon.wav",
				SizeFactor: 5, SizeJitter: 3, SpeedMin: 1, SpeedMax: 3,
				Motion: MotionConfig{
					SwipeMinMs: 2000, SwipeJitterMs: 2000, MaxVelocityY: 25,
					MoveBudgetMin: 10, MoveBudgetJitter: 100, ResetBudgetJitter: 50,
					BudgetReductionMin: 1, BudgetReductionJit: 4,
				},
			},
		},
		Explosion: ExplosionConfig{
			Sprite: "assets/images/boom.png", FrameWidth: 624.5, FrameHeight: 517,
			FrameCount: 4, StepMs: 100, Cue: "assets/audio/boom.wav",
		},
		Background: BackgroundConfig{
			Image: "assets/images/background.png",
			Layers: []LayerConfig{
				{Image: "assets/images/layer1.png", Width: 2400, Speed: 0.5},
				{Image: "assets/images/layer2.png", Width: 2400, Speed: 1},
				{Image: "assets/images/layer3.png", Width: 2400, Speed: 2},
			},
		},
		Reticle: ReticleConfig{Speed: 8, Radius: 24},
	}
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 加载游戏配置
//
// "data/" 开头的路径优先从嵌入资源读取，其余路径从磁盘读取。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Variant {
	case VariantClassic, VariantEnhanced:
	default:
		return fmt.Errorf("unknown variant %q (want %q or %q)", c.Variant, VariantClassic, VariantEnhanced)
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}

	if err := c.Spawn.Validate(); err != nil {
		return err
	}

	if len(c.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}
	seen := make(map[string]bool, len(c.Enemies))
	for i := range c.Enemies {
		e := &c.Enemies[i]
		if e.Kind == "" {
			return fmt.Errorf("enemy #%d: kind is empty", i)
		}
		if seen[e.Kind] {
			return fmt.Errorf("enemy %q: duplicate kind", e.Kind)
		}
		seen[e.Kind] = true

		switch e.Behavior {
		case BehaviorNameBat, BehaviorNameBee, BehaviorNameDragon:
		default:
			return fmt.Errorf("enemy %q: unknown behavior %q", e.Kind, e.Behavior)
		}
		if e.FrameWidth <= 0 || e.FrameHeight <= 0 || e.FrameCount <= 0 {
			return fmt.Errorf("enemy %q: frame size and count must be positive", e.Kind)
		}
		if e.SizeFactor <= 0 {
			return fmt.Errorf("enemy %q: sizeFactor must be positive, got %.1f", e.Kind, e.SizeFactor)
		}
		if e.SpeedMin > e.SpeedMax {
			return fmt.Errorf("enemy %q: speed range invalid: min(%.1f) > max(%.1f)", e.Kind, e.SpeedMin, e.SpeedMax)
		}
	}

	if c.Explosion.FrameWidth <= 0 || c.Explosion.FrameHeight <= 0 || c.Explosion.FrameCount <= 0 {
		return fmt.Errorf("explosion frame size and count must be positive")
	}

	for i, layer := range c.Background.Layers {
		if layer.Width <= 0 {
			return fmt.Errorf("background layer #%d: width must be positive", i)
		}
		if layer.Speed < 0 {
			return fmt.Errorf("background layer #%d: speed must not be negative", i)
		}
	}

	return nil
}

// Validate 验证生成规则
func (s SpawnConfig) Validate() error {
	if s.InitialIntervalMs <= 0 {
		return fmt.Errorf("spawn initial interval must be positive, got %.1f", s.InitialIntervalMs)
	}
	if s.MinIntervalMs <= 0 || s.MinIntervalMs > s.InitialIntervalMs {
		return fmt.Errorf("spawn min interval must be in (0, %.1f], got %.1f", s.InitialIntervalMs, s.MinIntervalMs)
	}
	if s.IntervalStepMs < 0 {
		return fmt.Errorf("spawn interval step must not be negative, got %.1f", s.IntervalStepMs)
	}
	if s.ScoreStep <= 0 {
		return fmt.Errorf("spawn score step must be positive, got %d", s.ScoreStep)
	}
	return nil
}

// FindEnemy 按类型ID查找敌人配置
func (c *GameConfig) FindEnemy(kind string) (*EnemyConfig, bool) {
	for i := range c.Enemies {
		if c.Enemies[i].Kind == kind {
			return &c.Enemies[i], true
		}
	}
	return nil, false
}
