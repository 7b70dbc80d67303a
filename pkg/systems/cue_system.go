package systems

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// CuePlayer 播放和停止实体的提示音
// game.AudioManager 实现了此接口
type CuePlayer interface {
	PlayCue(owner ecs.EntityID, soundPath string) bool
	StopCue(owner ecs.EntityID)
}

// CueSystem 负责实体提示音的呈现与回收
type CueSystem struct {
	entityManager *ecs.EntityManager
	player        CuePlayer // 可为 nil（静音）
}

// NewCueSystem 创建提示音系统
func NewCueSystem(em *ecs.EntityManager, player CuePlayer) *CueSystem {
	return &CueSystem{
		entityManager: em,
		player:        player,
	}
}

// Present 按实体创建顺序呈现提示音
//
// 实体第一次在第 0 帧被呈现时播放一次,之后不再播放。
// 已标记删除的实体不会被呈现。返回本次开始播放的数量。
func (s *CueSystem) Present() int {
	played := 0
	for _, id := range ecs.GetEntitiesWith2[*components.CueComponent, *components.AnimationComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		cue, _ := ecs.GetComponent[*components.CueComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if cue.Played || anim.CurrentFrame != 0 {
			continue
		}

		cue.Played = true
		played++
		if s.player != nil && cue.SoundID != "" {
			s.player.PlayCue(id, cue.SoundID)
		}
	}
	return played
}

// Prune 停止已标记实体的提示音并把它们移除
// 返回移除的实体数量
func (s *CueSystem) Prune() int {
	if s.player != nil {
		for _, id := range s.entityManager.MarkedEntities() {
			s.player.StopCue(id)
		}
	}
	return s.entityManager.RemoveMarkedEntities()
}
