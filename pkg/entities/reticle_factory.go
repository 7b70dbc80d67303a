package entities

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// NewReticleEntity 在屏幕中央创建键盘准星
// visible 为 false 时(触摸设备)准星隐藏且不能开火
func NewReticleEntity(em *ecs.EntityManager, cfg config.ReticleConfig, screenWidth, screenHeight float64, visible bool) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: screenWidth / 2,
		Y: screenHeight / 2,
	})
	em.AddComponent(id, &components.ReticleComponent{
		Speed:   cfg.Speed,
		Radius:  cfg.Radius,
		Visible: visible,
	})

	return id
}
