package systems

import (
	"image/color"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 没有背景图时的天空颜色
var skyColor = color.RGBA{R: 24, G: 28, B: 48, A: 255}

// 准星颜色
var reticleColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}

// RenderSystem 绘制游戏世界
//
// 绘制顺序:背景(单图或视差层)→ 敌人与爆炸(按创建顺序)→ 准星。
// 已标记删除的实体不绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	background    *ebiten.Image // 经典变体的单张背景,可为 nil
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, background *ebiten.Image) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		background:    background,
	}
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.drawLayers(screen)
	s.drawSprites(screen)
	s.drawReticles(screen)
}

// drawBackground 绘制纯色天空与单张背景(拉伸到整个屏幕)
func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(skyColor)
	if s.background == nil {
		return
	}

	bw, bh := s.background.Bounds().Dx(), s.background.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.background, op)
}

// drawLayers 绘制视差层的两份拷贝
func (s *RenderSystem) drawLayers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxLayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.ParallaxLayerComponent](s.entityManager, id)
		if layer.Image == nil {
			continue
		}
		for _, x := range []float64{layer.X1, layer.X2} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			screen.DrawImage(layer.Image, op)
		}
	}
}

// drawSprites 以 1/Size 的缩放绘制当前帧
func (s *RenderSystem) drawSprites(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SpriteSheetComponent,
		*components.AnimationComponent,
	](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
		if sheet.Image == nil || sheet.Size <= 0 {
			continue
		}
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		frame := utils.FrameImage(sheet.Image, anim.CurrentFrame, sheet.FrameWidth, sheet.FrameHeight)
		if frame == nil {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1/sheet.Size, 1/sheet.Size)
		op.GeoM.Translate(pos.X, pos.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(frame, op)
	}
}

// drawReticles 绘制可见的准星(圆环加十字)
func (s *RenderSystem) drawReticles(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ReticleComponent, *components.PositionComponent](s.entityManager) {
		reticle, _ := ecs.GetComponent[*components.ReticleComponent](s.entityManager, id)
		if !reticle.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		cx, cy, r := float32(pos.X), float32(pos.Y), float32(reticle.Radius)
		vector.StrokeCircle(screen, cx, cy, r, 2, reticleColor, true)
		vector.StrokeLine(screen, cx-r*1.4, cy, cx-r*0.4, cy, 2, reticleColor, true)
		vector.StrokeLine(screen, cx+r*0.4, cy, cx+r*1.4, cy, 2, reticleColor, true)
		vector.StrokeLine(screen, cx, cy-r*1.4, cx, cy-r*0.4, 2, reticleColor, true)
		vector.StrokeLine(screen, cx, cy+r*0.4, cx, cy+r*1.4, 2, reticleColor, true)
	}
}
