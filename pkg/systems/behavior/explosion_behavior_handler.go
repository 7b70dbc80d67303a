package behavior

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// handleExplosionBehavior 爆炸动画播放完后删除自身
func (s *BehaviorSystem) handleExplosionBehavior(id ecs.EntityID) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		s.entityManager.DestroyEntity(id)
		return
	}
	if anim.IsFinished {
		s.entityManager.DestroyEntity(id)
	}
}
