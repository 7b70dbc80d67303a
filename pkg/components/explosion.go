package components

// ExplosionComponent 标记实体为爆炸效果
// 帧推进由 AnimationComponent（非循环）负责，动画结束后实体被删除
type ExplosionComponent struct {
	AnchorX float64 // 击中点X
	AnchorY float64 // 击中点Y
}
