package systems

import (
	"log"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/entities"
	"github.com/gonewx/skyhunt/pkg/game"
)

// HitSystem 处理点击/射击的命中判定
type HitSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager // 可为 nil（无头运行）
	gameState       *game.GameState
	explosion       config.ExplosionConfig
}

// NewHitSystem 创建命中判定系统
func NewHitSystem(em *ecs.EntityManager, rm *game.ResourceManager, gs *game.GameState, explosion config.ExplosionConfig) *HitSystem {
	return &HitSystem{
		entityManager:   em,
		resourceManager: rm,
		gameState:       gs,
		explosion:       explosion,
	}
}

// Contains 判断点 (px, py) 是否落在实体的绘制矩形内
//
// 左/上边界包含在内,右/下边界不包含。
func Contains(pos *components.PositionComponent, sheet *components.SpriteSheetComponent, px, py float64) bool {
	return px >= pos.X && px < pos.X+sheet.DrawnWidth() &&
		py >= pos.Y && py < pos.Y+sheet.DrawnHeight()
}

// Shoot 在 (px, py) 开火
//
// 按生成顺序检查所有存活的可点击敌人,每个命中的敌人都会:
// 加一分、被标记删除、在击中点生成一个继承其尺寸的爆炸。
// 返回命中数量。
func (s *HitSystem) Shoot(px, py float64) int {
	targets := ecs.GetEntitiesWith3[
		*components.ClickableComponent,
		*components.PositionComponent,
		*components.SpriteSheetComponent,
	](s.entityManager)

	hits := 0
	for _, id := range targets {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
		if !Contains(pos, sheet, px, py) {
			continue
		}

		hits++
		s.entityManager.DestroyEntity(id)
		entities.NewExplosionEntity(s.entityManager, s.resourceManager, s.explosion, px, py, sheet.Size)

		outcome := s.gameState.RegisterHit(enemy.Kind)
		switch outcome {
		case game.HitIntervalShortened:
			log.Printf("[HitSystem] Score %d: spawn interval now %.0fms", s.gameState.Score, s.gameState.SpawnIntervalMs)
		case game.HitSpeedBoosted:
			log.Printf("[HitSystem] Score %d: %s speed bonus now %.1f", s.gameState.Score, enemy.Kind, s.gameState.SpeedBonusFor(enemy.Kind))
		}
	}

	return hits
}
