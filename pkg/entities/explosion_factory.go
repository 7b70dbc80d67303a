package entities

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
)

// NewExplosionEntity 在击中点创建爆炸效果
// 爆炸以击中点为中心,尺寸除数继承自被击中的敌人
func NewExplosionEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.ExplosionConfig,
	hitX, hitY, size float64) ecs.EntityID {

	id := em.CreateEntity()

	sheet := &components.SpriteSheetComponent{
		Image:       loadSheet(rm, cfg.Sprite, cfg.FrameWidth, cfg.FrameHeight, cfg.FrameCount),
		FrameWidth:  cfg.FrameWidth,
		FrameHeight: cfg.FrameHeight,
		Size:        size,
	}

	em.AddComponent(id, &components.PositionComponent{
		X: hitX - sheet.DrawnWidth()*0.5,
		Y: hitY - sheet.DrawnHeight()*0.5,
	})
	em.AddComponent(id, sheet)

	// 非循环:帧索引到达 FrameCount 时动画结束,爆炸被删除
	em.AddComponent(id, &components.AnimationComponent{
		FrameCount:   cfg.FrameCount,
		FrameSpeedMs: cfg.StepMs,
		IsLooping:    false,
	})

	em.AddComponent(id, &components.ExplosionComponent{AnchorX: hitX, AnchorY: hitY})
	em.AddComponent(id, &components.CueComponent{SoundID: cfg.Cue})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorExplosion})

	return id
}
