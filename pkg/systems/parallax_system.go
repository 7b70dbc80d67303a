package systems

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
)

// ParallaxSystem 滚动视差背景层
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
}

// NewParallaxSystem 创建视差背景系统
func NewParallaxSystem(em *ecs.EntityManager) *ParallaxSystem {
	return &ParallaxSystem{entityManager: em}
}

// Update 把每一层的两份拷贝向左移动一个速度
func (s *ParallaxSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxLayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.ParallaxLayerComponent](s.entityManager, id)
		ScrollLayer(layer)
	}
}

// ScrollLayer 滚动单个视差层
//
// 完全移出左侧（x <= -Width）的拷贝被放到另一份之后,
// 两份拷贝之间始终相距 Width。
func ScrollLayer(layer *components.ParallaxLayerComponent) {
	layer.X1 -= layer.Speed
	layer.X2 -= layer.Speed

	if layer.X1 <= -layer.Width {
		layer.X1 = layer.X2 + layer.Width
	}
	if layer.X2 <= -layer.Width {
		layer.X2 = layer.X1 + layer.Width
	}
}
