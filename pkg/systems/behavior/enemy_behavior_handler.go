package behavior

import (
	"log"
	"math"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// handleEnemyBase 所有敌人共有的更新:向左移动、离屏删除、越界结束本局
// 返回 false 表示实体缺少必要组件,后续运动策略应跳过
func (s *BehaviorSystem) handleEnemyBase(id ecs.EntityID) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return false
	}
	sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
	if !ok {
		return false
	}

	pos.X -= enemy.SpeedX

	if pos.X < -sheet.DrawnWidth() {
		s.entityManager.DestroyEntity(id)
	}

	if pos.X < 0 {
		if !s.gameState.GameOverRequested() {
			log.Printf("[BehaviorSystem] %s (entity %d) crossed the left edge", enemy.Kind, id)
		}
		s.gameState.RequestGameOver()
	}

	return true
}

// handleBatBehavior 蝙蝠:纵向抖动,定期随机换向,碰到上下边界反向
func (s *BehaviorSystem) handleBatBehavior(id ecs.EntityID, deltaMs float64) {
	motion, ok := ecs.GetComponent[*components.BatMotionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

	motion.TurnAcc += deltaMs
	pos.Y -= motion.DirectionY

	if motion.TurnAcc > motion.TurnIntervalMs {
		motion.DirectionY = math.Sin(s.rng.Float64() * motion.TurnSpread)
		motion.TurnAcc = 0
	}

	if pos.Y < 0 || pos.Y+sheet.DrawnHeight() > s.screenHeight {
		motion.DirectionY = -motion.DirectionY
	}
}

// handleBeeBehavior 蜜蜂:沿正弦曲线飘动,完全离开上/下边界后删除
func (s *BehaviorSystem) handleBeeBehavior(id ecs.EntityID) {
	motion, ok := ecs.GetComponent[*components.BeeMotionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

	motion.Angle += motion.AngleSpeed
	pos.Y += motion.Curve * math.Sin(motion.Angle)

	if pos.Y+sheet.DrawnHeight() < 0 || pos.Y > s.screenHeight {
		s.entityManager.DestroyEntity(id)
	}
}

// handleDragonBehavior 龙:在边界内反弹,每隔一段时间执行一次纵向俯冲
//
// 俯冲期间每 tick 移动 VelocityY*DirectionY 并消耗预算;
// 预算耗尽后计时器清零、重新抽取预算并反向。
func (s *BehaviorSystem) handleDragonBehavior(id ecs.EntityID, deltaMs float64) {
	motion, ok := ecs.GetComponent[*components.DragonMotionComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)

	if pos.Y < 0 || pos.Y+sheet.DrawnHeight() > s.screenHeight {
		motion.DirectionY = -motion.DirectionY
	}

	if motion.SwipeAcc <= motion.SwipeIntervalMs {
		motion.SwipeAcc += deltaMs
		return
	}

	if motion.MoveBudget > 0 {
		pos.Y += motion.VelocityY * motion.DirectionY
		motion.MoveBudget -= motion.BudgetReduction
		return
	}

	motion.SwipeAcc = 0
	motion.MoveBudget = s.rng.Float64()*motion.ResetBudgetJitter + motion.ResetBudgetMin
	motion.DirectionY = -motion.DirectionY
}
