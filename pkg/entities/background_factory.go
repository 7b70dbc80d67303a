package entities

import (
	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewParallaxLayerEntity 创建一个视差背景层
// 两份拷贝分别位于 x=0 和 x=Width；图片缺失时使用占位剪影
func NewParallaxLayerEntity(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.LayerConfig, screenHeight float64, depth int) ecs.EntityID {
	id := em.CreateEntity()

	var img *ebiten.Image
	if rm != nil {
		img = rm.LoadLayerOrPlaceholder(cfg.Image, cfg.Width, screenHeight, depth)
	}

	em.AddComponent(id, &components.ParallaxLayerComponent{
		Image: img,
		Width: cfg.Width,
		Speed: cfg.Speed,
		X1:    0,
		X2:    cfg.Width,
	})

	return id
}

// NewParallaxLayers 按从远到近的顺序创建全部视差层
func NewParallaxLayers(em *ecs.EntityManager, rm *game.ResourceManager, layers []config.LayerConfig, screenHeight float64) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(layers))
	for depth, layer := range layers {
		ids = append(ids, NewParallaxLayerEntity(em, rm, layer, screenHeight, depth))
	}
	return ids
}
