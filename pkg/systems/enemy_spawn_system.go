package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/entities"
	"github.com/gonewx/skyhunt/pkg/game"
)

// EnemySpawnSystem 按游戏状态中的生成间隔生成敌人
//
// 每次到期从敌人类型表中均匀随机选择一种,
// 并带上该类型当前的速度加成。
type EnemySpawnSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager // 可为 nil（无头运行）
	gameState       *game.GameState
	enemies         []config.EnemyConfig
	screenWidth     float64
	screenHeight    float64
	rng             *rand.Rand
}

// NewEnemySpawnSystem 创建敌人生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, rm *game.ResourceManager, gs *game.GameState,
	enemies []config.EnemyConfig, screenWidth, screenHeight float64, rng *rand.Rand) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		entityManager:   em,
		resourceManager: rm,
		gameState:       gs,
		enemies:         enemies,
		screenWidth:     screenWidth,
		screenHeight:    screenHeight,
		rng:             rng,
	}
}

// Update 推进生成计时器,到期时生成一个敌人
// 返回新敌人的ID;本 tick 没有生成时返回 0
func (s *EnemySpawnSystem) Update(deltaMs float64) ecs.EntityID {
	if !s.gameState.AdvanceSpawnTimer(deltaMs) {
		return 0
	}
	return s.Spawn()
}

// Spawn 立即生成一个随机类型的敌人
func (s *EnemySpawnSystem) Spawn() ecs.EntityID {
	if len(s.enemies) == 0 {
		return 0
	}

	cfg := s.enemies[s.rng.Intn(len(s.enemies))]
	bonus := s.gameState.SpeedBonusFor(cfg.Kind)

	id, err := entities.NewEnemyEntity(s.entityManager, s.resourceManager, cfg, s.screenWidth, s.screenHeight, s.rng, bonus)
	if err != nil {
		log.Printf("[EnemySpawnSystem] Warning: failed to spawn %s: %v", cfg.Kind, err)
		return 0
	}

	log.Printf("[EnemySpawnSystem] Spawned %s (entity %d, interval %.0fms, bonus %.1f)",
		cfg.Kind, id, s.gameState.SpawnIntervalMs, bonus)
	return id
}
