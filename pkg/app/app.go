// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/game"
	"github.com/gonewx/skyhunt/pkg/scenes"
	"github.com/gonewx/skyhunt/pkg/utils"
)

const (
	// AppName gdata 存储使用的应用名
	AppName = "skyhunt"
	// DefaultConfigPath 默认游戏配置（嵌入资源）
	DefaultConfigPath = "data/game.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Variant 覆盖配置文件中的变体（"classic" 或 "enhanced"），为空则使用配置文件
	Variant string
	// ConfigPath 游戏配置路径，为空则使用 DefaultConfigPath
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig      *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[App] Config loaded: %s variant, %d enemy kinds", gameConfig.Variant, len(gameConfig.Enemies))

	settingsManager := game.NewSettingsManager(openStorage())

	// 初始化音频上下文
	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized (%d Hz)", gameConfig.Audio.SampleRate)

	sceneManager := game.NewSceneManager()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sceneManager.SwitchTo(scenes.NewGameScene(resourceManager, audioManager, settingsManager, gameConfig, rng))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
	}, nil
}

// LoadConfig 读取游戏配置并应用命令行覆盖项
func LoadConfig(cfg Config) (*config.GameConfig, error) {
	path := cfg.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	gameConfig, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.Variant != "" {
		gameConfig.Variant = config.Variant(cfg.Variant)
		if err := gameConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --variant: %w", err)
		}
	}
	return gameConfig, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置仅保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	input := utils.GetInputState()
	if input.ToggleFullscreen {
		a.toggleFullscreen()
	}
	if input.ToggleSound {
		a.audioManager.ToggleSound()
		a.persistSettings()
	}
	if input.VolumeUp || input.VolumeDown {
		delta := game.VolumeStep
		if input.VolumeDown {
			delta = -delta
		}
		a.audioManager.AdjustSoundVolume(delta)
		a.persistSettings()
	}

	a.sceneManager.Update(1000.0 / float64(ebiten.TPS()))
	return nil
}

// toggleFullscreen F11 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	a.persistSettings()
}

func (a *App) persistSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GameConfig 返回加载后的游戏配置
// main 用它设置窗口尺寸与标题
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}
