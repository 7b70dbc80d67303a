package behavior

import (
	"math/rand"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
)

// BehaviorSystem 处理敌人与爆炸的运动逻辑
// 根据实体的 BehaviorComponent 类型执行相应的运动策略(蝙蝠、蜜蜂、龙、爆炸)
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState // 敌人越过左边界时请求结束本局
	screenHeight  float64
	rng           *rand.Rand
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - gs: GameState 实例
//   - screenHeight: 逻辑屏幕高度,用于上下边界判定
//   - rng: 随机数源
func NewBehaviorSystem(em *ecs.EntityManager, gs *game.GameState, screenHeight float64, rng *rand.Rand) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		gameState:     gs,
		screenHeight:  screenHeight,
		rng:           rng,
	}
}

// Update 按创建顺序更新所有拥有行为组件的实体
//
// 帧动画由 AnimationSystem 推进;这里只处理位移、删除与结束判定。
func (s *BehaviorSystem) Update(deltaMs float64) {
	ids := ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager)

	for _, id := range ids {
		behaviorComp, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)

		switch behaviorComp.Type {
		case components.BehaviorBat:
			if s.handleEnemyBase(id) {
				s.handleBatBehavior(id, deltaMs)
			}
		case components.BehaviorBee:
			if s.handleEnemyBase(id) {
				s.handleBeeBehavior(id)
			}
		case components.BehaviorDragon:
			if s.handleEnemyBase(id) {
				s.handleDragonBehavior(id, deltaMs)
			}
		case components.BehaviorExplosion:
			s.handleExplosionBehavior(id)
		}
	}
}
