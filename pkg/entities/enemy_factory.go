package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewEnemyEntity 创建一个从屏幕右边缘飞入的敌人
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例,用于加载精灵表(为 nil 时不加载图片,仅用于逻辑测试)
//   - cfg: 敌人类型配置
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
//   - rng: 随机数源
//   - speedBonus: 该类型当前的水平速度加成
//
// 返回: 创建的实体ID;运动策略未知时返回错误且不创建实体
func NewEnemyEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.EnemyConfig,
	screenWidth, screenHeight float64, rng *rand.Rand, speedBonus float64) (ecs.EntityID, error) {

	behavior, err := behaviorFor(cfg.Behavior)
	if err != nil {
		return 0, err
	}

	size := cfg.SizeFactor + rng.Float64()*cfg.SizeJitter
	drawnHeight := cfg.FrameHeight / size

	id := em.CreateEntity()

	// 右边缘外侧,纵向随机但整体在屏幕内
	em.AddComponent(id, &components.PositionComponent{
		X: screenWidth,
		Y: rng.Float64() * (screenHeight - drawnHeight),
	})

	em.AddComponent(id, &components.SpriteSheetComponent{
		Image:       loadSheet(rm, cfg.Sprite, cfg.FrameWidth, cfg.FrameHeight, cfg.FrameCount),
		FrameWidth:  cfg.FrameWidth,
		FrameHeight: cfg.FrameHeight,
		Size:        size,
	})

	em.AddComponent(id, &components.AnimationComponent{
		FrameCount:   cfg.FrameCount,
		FrameSpeedMs: cfg.AnimationMs,
		IsLooping:    true,
	})

	em.AddComponent(id, &components.EnemyComponent{
		Kind:   cfg.Kind,
		SpeedX: cfg.SpeedMin + rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin) + speedBonus,
	})

	em.AddComponent(id, &components.CueComponent{SoundID: cfg.Cue})
	em.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	em.AddComponent(id, &components.BehaviorComponent{Type: behavior})

	m := cfg.Motion
	switch behavior {
	case components.BehaviorBat:
		em.AddComponent(id, &components.BatMotionComponent{
			DirectionY:     math.Sin(rng.Float64() * m.TurnSpread),
			TurnIntervalMs: m.TurnIntervalMs,
			TurnSpread:     m.TurnSpread,
		})
	case components.BehaviorBee:
		em.AddComponent(id, &components.BeeMotionComponent{
			Angle:      rng.Float64() * m.MaxAngle,
			AngleSpeed: rng.Float64() * m.MaxAngleSpeed,
			Curve:      rng.Float64() * m.MaxCurve,
		})
	case components.BehaviorDragon:
		em.AddComponent(id, &components.DragonMotionComponent{
			SwipeIntervalMs:   m.SwipeMinMs + rng.Float64()*m.SwipeJitterMs,
			DirectionY:        1,
			VelocityY:         rng.Float64() * m.MaxVelocityY,
			MoveBudget:        m.MoveBudgetMin + rng.Float64()*m.MoveBudgetJitter,
			BudgetReduction:   m.BudgetReductionMin + rng.Float64()*m.BudgetReductionJit,
			ResetBudgetMin:    m.MoveBudgetMin,
			ResetBudgetJitter: m.ResetBudgetJitter,
		})
	}

	return id, nil
}

// behaviorFor 把配置中的运动策略名称映射为行为类型
func behaviorFor(name string) (components.BehaviorType, error) {
	switch name {
	case config.BehaviorNameBat:
		return components.BehaviorBat, nil
	case config.BehaviorNameBee:
		return components.BehaviorBee, nil
	case config.BehaviorNameDragon:
		return components.BehaviorDragon, nil
	default:
		return 0, fmt.Errorf("unknown enemy behavior %q", name)
	}
}

// loadSheet 加载精灵表,rm 为 nil 时返回 nil
func loadSheet(rm *game.ResourceManager, path string, frameWidth, frameHeight float64, frames int) *ebiten.Image {
	if rm == nil {
		return nil
	}
	return rm.LoadImageOrPlaceholder(path, frameWidth, frameHeight, frames)
}
