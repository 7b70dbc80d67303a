package behavior

import (
	"math/rand"
	"testing"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
)

const testScreenHeight = 720.0

func newTestSystem() (*ecs.EntityManager, *game.GameState, *BehaviorSystem) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.DefaultGameConfig().Spawn)
	gs.StartRound()
	return em, gs, NewBehaviorSystem(em, gs, testScreenHeight, rand.New(rand.NewSource(1)))
}

// addEnemy 创建一个绘制尺寸为 100x100 的敌人
func addEnemy(em *ecs.EntityManager, behavior components.BehaviorType, x, y, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteSheetComponent{FrameWidth: 300, FrameHeight: 300, Size: 3})
	em.AddComponent(id, &components.AnimationComponent{FrameCount: 2, FrameSpeedMs: 100, IsLooping: true})
	em.AddComponent(id, &components.EnemyComponent{Kind: behavior.String(), SpeedX: speed})
	em.AddComponent(id, &components.BehaviorComponent{Type: behavior})
	return id
}

// TestEnemyBaseMovesLeft 测试敌人每 tick 向左移动水平速度
func TestEnemyBaseMovesLeft(t *testing.T) {
	em, gs, system := newTestSystem()
	id := addEnemy(em, components.BehaviorBee, 500, 300, 2.5)
	em.AddComponent(id, &components.BeeMotionComponent{})

	system.Update(16)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 497.5 {
		t.Errorf("X: got %v, want 497.5", pos.X)
	}
	if gs.GameOverRequested() {
		t.Error("game over requested while on screen")
	}
}

// TestEnemyBaseGameOver 测试敌人越过左边界请求结束本局
func TestEnemyBaseGameOver(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		wantOver bool
	}{
		{"移动后正好为 0", 2, false},
		{"移动后小于 0", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, gs, system := newTestSystem()
			id := addEnemy(em, components.BehaviorBee, tt.x, 300, 2)
			em.AddComponent(id, &components.BeeMotionComponent{})

			system.Update(16)

			if gs.GameOverRequested() != tt.wantOver {
				t.Errorf("GameOverRequested: got %v, want %v", gs.GameOverRequested(), tt.wantOver)
			}
		})
	}
}

// TestEnemyBaseDeletesOffscreen 测试完全离开左侧的敌人被标记删除
func TestEnemyBaseDeletesOffscreen(t *testing.T) {
	em, _, system := newTestSystem()
	id := addEnemy(em, components.BehaviorBee, -99, 300, 2)
	em.AddComponent(id, &components.BeeMotionComponent{})

	system.Update(16)

	if !em.IsMarkedForDestroy(id) {
		t.Error("enemy past -width should be marked")
	}
}

// TestBatBouncesAtEdges 测试蝙蝠在上下边界反向
func TestBatBouncesAtEdges(t *testing.T) {
	em, _, system := newTestSystem()

	// 顶部: y -= 1 后 y < 0,方向翻转
	top := addEnemy(em, components.BehaviorBat, 500, 0.5, 1)
	em.AddComponent(top, &components.BatMotionComponent{DirectionY: 1, TurnIntervalMs: 100, TurnSpread: 6.2})

	// 底部: 绘制高度 100,y+100 > 720
	bottom := addEnemy(em, components.BehaviorBat, 500, 620.5, 1)
	em.AddComponent(bottom, &components.BatMotionComponent{DirectionY: -1, TurnIntervalMs: 100, TurnSpread: 6.2})

	system.Update(16)

	topMotion, _ := ecs.GetComponent[*components.BatMotionComponent](em, top)
	if topMotion.DirectionY != -1 {
		t.Errorf("top bat direction: got %v, want -1", topMotion.DirectionY)
	}
	bottomMotion, _ := ecs.GetComponent[*components.BatMotionComponent](em, bottom)
	if bottomMotion.DirectionY != 1 {
		t.Errorf("bottom bat direction: got %v, want 1", bottomMotion.DirectionY)
	}
}

// TestBatTurnsOnInterval 测试蝙蝠每隔 TurnIntervalMs 重新随机方向
func TestBatTurnsOnInterval(t *testing.T) {
	em, _, system := newTestSystem()
	id := addEnemy(em, components.BehaviorBat, 800, 300, 1)
	em.AddComponent(id, &components.BatMotionComponent{DirectionY: 0, TurnIntervalMs: 100, TurnSpread: 6.2})
	motion, _ := ecs.GetComponent[*components.BatMotionComponent](em, id)

	system.Update(60)
	if motion.TurnAcc != 60 {
		t.Errorf("TurnAcc: got %v, want 60", motion.TurnAcc)
	}

	system.Update(60)
	if motion.TurnAcc != 0 {
		t.Errorf("TurnAcc should reset after turning, got %v", motion.TurnAcc)
	}
	if motion.DirectionY < -1 || motion.DirectionY > 1 {
		t.Errorf("DirectionY %v outside [-1, 1]", motion.DirectionY)
	}
}

// TestBeeCurve 测试蜜蜂沿正弦曲线移动并在离开屏幕后删除
func TestBeeCurve(t *testing.T) {
	em, _, system := newTestSystem()
	id := addEnemy(em, components.BehaviorBee, 800, 300, 1)
	em.AddComponent(id, &components.BeeMotionComponent{Angle: 0, AngleSpeed: 1.5707963267948966, Curve: 4})

	system.Update(16)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != 304 {
		t.Errorf("Y: got %v, want 304 (curve * sin(pi/2))", pos.Y)
	}

	below := addEnemy(em, components.BehaviorBee, 800, 719, 1)
	em.AddComponent(below, &components.BeeMotionComponent{Angle: 0, AngleSpeed: 1.5707963267948966, Curve: 4})
	above := addEnemy(em, components.BehaviorBee, 800, -99, 1)
	em.AddComponent(above, &components.BeeMotionComponent{Angle: 0, AngleSpeed: -1.5707963267948966, Curve: 4})

	system.Update(16)

	if !em.IsMarkedForDestroy(below) {
		t.Error("bee below the screen should be marked")
	}
	if !em.IsMarkedForDestroy(above) {
		t.Error("bee above the screen should be marked")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("on-screen bee should not be marked")
	}
}

// TestDragonSwipe 测试龙的俯冲周期
func TestDragonSwipe(t *testing.T) {
	em, _, system := newTestSystem()
	id := addEnemy(em, components.BehaviorDragon, 1000, 300, 1)
	em.AddComponent(id, &components.DragonMotionComponent{
		SwipeIntervalMs:   100,
		DirectionY:        1,
		VelocityY:         10,
		MoveBudget:        5,
		BudgetReduction:   2,
		ResetBudgetMin:    10,
		ResetBudgetJitter: 50,
	})
	motion, _ := ecs.GetComponent[*components.DragonMotionComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	// 计时阶段:不纵向移动
	system.Update(60)
	system.Update(60)
	if pos.Y != 300 {
		t.Errorf("Y moved during wait: %v", pos.Y)
	}
	if motion.SwipeAcc != 120 {
		t.Fatalf("SwipeAcc: got %v, want 120", motion.SwipeAcc)
	}

	// 俯冲:预算 5 -> 3 -> 1 -> -1,三次移动
	for i := 0; i < 3; i++ {
		system.Update(16)
	}
	if pos.Y != 330 {
		t.Errorf("Y after swipe: got %v, want 330", pos.Y)
	}

	// 预算耗尽:计时器清零、重新抽取预算、反向
	system.Update(16)
	if motion.SwipeAcc != 0 {
		t.Errorf("SwipeAcc should reset, got %v", motion.SwipeAcc)
	}
	if motion.DirectionY != -1 {
		t.Errorf("DirectionY should reverse, got %v", motion.DirectionY)
	}
	if motion.MoveBudget < 10 || motion.MoveBudget >= 60 {
		t.Errorf("new budget %v outside [10, 60)", motion.MoveBudget)
	}
}

// TestDragonBouncesAtEdges 测试龙超出上下边界时反向
func TestDragonBouncesAtEdges(t *testing.T) {
	em, _, system := newTestSystem()
	id := addEnemy(em, components.BehaviorDragon, 1000, 630, 1)
	em.AddComponent(id, &components.DragonMotionComponent{SwipeIntervalMs: 5000, DirectionY: 1})

	system.Update(16)

	motion, _ := ecs.GetComponent[*components.DragonMotionComponent](em, id)
	if motion.DirectionY != -1 {
		t.Errorf("DirectionY: got %v, want -1", motion.DirectionY)
	}
}

// TestExplosionSelfDeletes 测试爆炸动画完成后删除
func TestExplosionSelfDeletes(t *testing.T) {
	em, gs, system := newTestSystem()

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: -50, Y: 100})
	em.AddComponent(id, &components.AnimationComponent{FrameCount: 4, FrameSpeedMs: 100})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorExplosion})

	system.Update(16)
	if em.IsMarkedForDestroy(id) {
		t.Error("running explosion should not be marked")
	}
	// 爆炸不是敌人,位于左侧外也不会结束本局
	if gs.GameOverRequested() {
		t.Error("explosion must not trigger game over")
	}

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	anim.IsFinished = true
	system.Update(16)
	if !em.IsMarkedForDestroy(id) {
		t.Error("finished explosion should be marked")
	}
}
