package systems

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
)

// newTestState 创建使用默认规则并已开局的游戏状态
func newTestState() *game.GameState {
	gs := game.NewGameState(config.DefaultGameConfig().Spawn)
	gs.StartRound()
	return gs
}

// addTestEnemy 在指定位置放置一个绘制尺寸为 w x h 的敌人
func addTestEnemy(em *ecs.EntityManager, kind string, x, y, w, h, size float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteSheetComponent{FrameWidth: w * size, FrameHeight: h * size, Size: size})
	em.AddComponent(id, &components.AnimationComponent{FrameCount: 2, FrameSpeedMs: 100, IsLooping: true})
	em.AddComponent(id, &components.EnemyComponent{Kind: kind, SpeedX: 2})
	em.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	em.AddComponent(id, &components.CueComponent{SoundID: "assets/audio/" + kind + ".wav"})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorBat})
	return id
}

// recordingCuePlayer 记录播放与停止请求
type recordingCuePlayer struct {
	played  []ecs.EntityID
	stopped []ecs.EntityID
}

func (r *recordingCuePlayer) PlayCue(owner ecs.EntityID, soundPath string) bool {
	r.played = append(r.played, owner)
	return true
}

func (r *recordingCuePlayer) StopCue(owner ecs.EntityID) {
	r.stopped = append(r.stopped, owner)
}
