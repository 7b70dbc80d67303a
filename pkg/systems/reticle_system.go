package systems

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// ReticleInput 准星相关的输入
type ReticleInput struct {
	Left, Right, Up, Down bool
	// Touch 本帧检测到触摸设备;准星随之永久隐藏
	Touch bool
}

// ReticleSystem 用方向键移动键盘准星
type ReticleSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
	screenHeight  float64
}

// NewReticleSystem 创建准星系统
func NewReticleSystem(em *ecs.EntityManager, screenWidth, screenHeight float64) *ReticleSystem {
	return &ReticleSystem{
		entityManager: em,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Update 按方向键移动准星,中心限制在屏幕内
func (s *ReticleSystem) Update(input ReticleInput) {
	for _, id := range ecs.GetEntitiesWith2[*components.ReticleComponent, *components.PositionComponent](s.entityManager) {
		reticle, _ := ecs.GetComponent[*components.ReticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if input.Touch {
			reticle.Visible = false
		}
		if !reticle.Visible {
			continue
		}

		if input.Left {
			pos.X -= reticle.Speed
		}
		if input.Right {
			pos.X += reticle.Speed
		}
		if input.Up {
			pos.Y -= reticle.Speed
		}
		if input.Down {
			pos.Y += reticle.Speed
		}

		pos.X = clamp(pos.X, 0, s.screenWidth-1)
		pos.Y = clamp(pos.Y, 0, s.screenHeight-1)
	}
}

// AimPoint 返回可见准星的中心;没有可见准星时 ok 为 false
func (s *ReticleSystem) AimPoint() (x, y float64, ok bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.ReticleComponent, *components.PositionComponent](s.entityManager) {
		reticle, _ := ecs.GetComponent[*components.ReticleComponent](s.entityManager, id)
		if !reticle.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		return pos.X, pos.Y, true
	}
	return 0, 0, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
