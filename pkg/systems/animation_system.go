package systems

import (
	"log"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// AnimationSystem 管理所有实体的精灵表帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有动画实体的帧
//
// 计时器累计超过 FrameSpeedMs 时前进一帧并把计时器清零。
// 循环动画到达 FrameCount 时回到第 0 帧；非循环动画停在最后一帧并标记完成。
func (s *AnimationSystem) Update(deltaMs float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if Advance(anim, deltaMs) {
			log.Printf("[AnimationSystem] 动画播放完成 (实体ID: %d)", id)
		}
	}
}

// Advance 推进单个动画组件，非循环动画在本次调用中播放完成时返回 true
func Advance(anim *components.AnimationComponent, deltaMs float64) bool {
	// 如果动画已完成且非循环,跳过
	if anim.IsFinished || anim.FrameCount <= 0 {
		return false
	}

	anim.Accumulator += deltaMs
	if anim.Accumulator <= anim.FrameSpeedMs {
		return false
	}

	anim.Accumulator = 0
	anim.CurrentFrame++

	if anim.CurrentFrame >= anim.FrameCount {
		if anim.IsLooping {
			anim.CurrentFrame = 0
		} else {
			anim.CurrentFrame = anim.FrameCount - 1
			anim.IsFinished = true
			return true
		}
	}
	return false
}
