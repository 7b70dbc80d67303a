package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/entities"
	"github.com/gonewx/skyhunt/pkg/game"
	"github.com/gonewx/skyhunt/pkg/systems"
	"github.com/gonewx/skyhunt/pkg/systems/behavior"
	"github.com/gonewx/skyhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// HUD 与提示文字
	HUDFontSize     = 40.0
	MessageFontSize = 60.0
	HUDMarginX      = 40.0
	HUDMarginY      = 20.0
	MessageLineGap  = 80.0
)

// 提示文字颜色
var (
	messageColor = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	hudColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// GameScene 游戏主场景
//
// 空闲阶段显示提示文字,点击后开始一局;一局中每个 tick 依次执行:
// 处理输入 → 推进生成计时器并按需生成 → 清理已删除实体 → 呈现提示音 → 更新所有实体 → 判定本局结束。
// 精灵在随后的 Draw 中按同样的实体顺序绘制。
type GameScene struct {
	resourceManager *game.ResourceManager // 可为 nil(无头运行)
	settingsManager *game.SettingsManager // 可为 nil
	config          *config.GameConfig
	gameState       *game.GameState

	screenWidth  float64
	screenHeight float64

	// ECS Framework and Systems
	entityManager   *ecs.EntityManager
	spawnSystem     *systems.EnemySpawnSystem
	animationSystem *systems.AnimationSystem
	behaviorSystem  *behavior.BehaviorSystem
	cueSystem       *systems.CueSystem
	hitSystem       *systems.HitSystem
	parallaxSystem  *systems.ParallaxSystem
	reticleSystem   *systems.ReticleSystem
	renderSystem    *systems.RenderSystem

	// Font Resources
	hudFont     *text.GoTextFace
	messageFont *text.GoTextFace

	// pollInput 每个 tick 读取一次输入
	pollInput func() FrameInput
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - rm: ResourceManager(为 nil 时不加载图片和字体)
//   - am: AudioManager(为 nil 时静音)
//   - sm: SettingsManager(为 nil 时退出时不保存)
//   - cfg: 游戏配置
//   - rng: 随机数源
func NewGameScene(rm *game.ResourceManager, am *game.AudioManager, sm *game.SettingsManager,
	cfg *config.GameConfig, rng *rand.Rand) *GameScene {

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Spawn)
	width, height := float64(cfg.Window.Width), float64(cfg.Window.Height)

	// nil 指针不能直接作为接口传入
	var cues systems.CuePlayer
	if am != nil {
		cues = am
	}

	s := &GameScene{
		resourceManager: rm,
		settingsManager: sm,
		config:          cfg,
		gameState:       gs,
		screenWidth:     width,
		screenHeight:    height,
		entityManager:   em,
		spawnSystem:     systems.NewEnemySpawnSystem(em, rm, gs, cfg.Enemies, width, height, rng),
		animationSystem: systems.NewAnimationSystem(em),
		behaviorSystem:  behavior.NewBehaviorSystem(em, gs, height, rng),
		cueSystem:       systems.NewCueSystem(em, cues),
		hitSystem:       systems.NewHitSystem(em, rm, gs, cfg.Explosion),
		parallaxSystem:  systems.NewParallaxSystem(em),
		reticleSystem:   systems.NewReticleSystem(em, width, height),
		pollInput: func() FrameInput {
			return FrameInputFromState(utils.GetInputState())
		},
	}

	s.renderSystem = systems.NewRenderSystem(em, s.loadBackground())
	s.loadFonts()

	if s.isEnhanced() {
		entities.NewParallaxLayers(em, rm, cfg.Background.Layers, height)
		entities.NewReticleEntity(em, cfg.Reticle, width, height, !utils.IsTouchDevice())
	}

	log.Printf("[GameScene] Created (%s variant, %dx%d)", cfg.Variant, cfg.Window.Width, cfg.Window.Height)
	return s
}

// loadBackground 经典变体加载单张背景图,失败时使用纯色
func (s *GameScene) loadBackground() *ebiten.Image {
	if s.resourceManager == nil || s.isEnhanced() || s.config.Background.Image == "" {
		return nil
	}
	img, err := s.resourceManager.LoadImage(s.config.Background.Image)
	if err != nil {
		log.Printf("[GameScene] Warning: %v (using plain sky)", err)
		return nil
	}
	return img
}

// loadFonts 加载 HUD 与提示文字字体
func (s *GameScene) loadFonts() {
	if s.resourceManager == nil {
		return
	}
	var err error
	if s.hudFont, err = s.resourceManager.FontFace(HUDFontSize); err != nil {
		log.Printf("[GameScene] Warning: failed to load HUD font: %v", err)
	}
	if s.messageFont, err = s.resourceManager.FontFace(MessageFontSize); err != nil {
		log.Printf("[GameScene] Warning: failed to load message font: %v", err)
	}
}

func (s *GameScene) isEnhanced() bool {
	return s.config.Variant == config.VariantEnhanced
}

// Update 实现 game.Scene:读取输入并执行一个 tick
func (s *GameScene) Update(deltaMs float64) {
	s.Tick(deltaMs, s.pollInput())
}

// Tick 用给定的输入执行一个 tick
func (s *GameScene) Tick(deltaMs float64, in FrameInput) {
	if s.isEnhanced() {
		s.reticleSystem.Update(systems.ReticleInput{
			Left:  in.Left,
			Right: in.Right,
			Up:    in.Up,
			Down:  in.Down,
			Touch: in.Touch,
		})
	}

	if !s.gameState.IsRunning() {
		s.parallaxSystem.Update()
		if in.Click {
			s.startRound()
		}
		return
	}

	// 输入在生成之前处理
	if in.Click {
		s.hitSystem.Shoot(in.X, in.Y)
	}
	if in.Fire && s.isEnhanced() {
		if x, y, ok := s.reticleSystem.AimPoint(); ok {
			s.hitSystem.Shoot(x, y)
		}
	}

	s.spawnSystem.Update(deltaMs)
	s.cueSystem.Prune()
	s.cueSystem.Present()

	s.animationSystem.Update(deltaMs)
	s.behaviorSystem.Update(deltaMs)
	s.parallaxSystem.Update()

	if s.gameState.GameOverRequested() {
		s.endRound()
	}
}

// startRound 从空闲进入一局
func (s *GameScene) startRound() {
	s.clearCombatants()
	s.gameState.StartRound()
	log.Printf("[GameScene] Round started (interval %.0fms)", s.gameState.SpawnIntervalMs)
}

// endRound 结束本局并回到空闲
func (s *GameScene) endRound() {
	s.gameState.EndRound()
	s.clearCombatants()
	log.Printf("[GameScene] Game over, score %d", s.gameState.LastScore)
}

// clearCombatants 移除所有敌人与爆炸,视差层与准星保留
func (s *GameScene) clearCombatants() {
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.cueSystem.Prune()
}

// Draw 绘制游戏世界与文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.gameState.IsRunning() {
		utils.DrawText(screen, fmt.Sprintf("Score: %d", s.gameState.Score), s.hudFont, HUDMarginX, HUDMarginY, hudColor)
		return
	}
	s.drawIdleMessages(screen)
}

// drawIdleMessages 空闲阶段的提示文字
func (s *GameScene) drawIdleMessages(screen *ebiten.Image) {
	for i, line := range s.IdleMessages() {
		utils.DrawCenteredText(screen, line, s.messageFont, s.screenWidth/2, s.screenHeight/2+float64(i)*MessageLineGap, messageColor)
	}
}

// IdleMessages 返回空闲阶段要显示的文字(按行)
func (s *GameScene) IdleMessages() []string {
	if s.gameState.IsFirstGame() {
		return []string{"Click to play!"}
	}
	return []string{
		"Game Over.",
		"Click to play!",
		fmt.Sprintf("Last score: %d", s.gameState.LastScore),
	}
}

// SaveOnExit 实现 game.Saveable:关闭窗口时保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

// GameState 返回场景持有的游戏状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Enemies 按生成顺序返回存活(未标记删除)的敌人
func (s *GameScene) Enemies() []ecs.EntityID {
	return s.live(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager))
}

// Explosions 按生成顺序返回存活的爆炸
func (s *GameScene) Explosions() []ecs.EntityID {
	return s.live(ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager))
}

func (s *GameScene) live(ids []ecs.EntityID) []ecs.EntityID {
	result := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		if !s.entityManager.IsMarkedForDestroy(id) {
			result = append(result, id)
		}
	}
	return result
}
