package components

// BehaviorType 定义实体的行为类型
// 用于 BehaviorSystem 选择对应的运动策略
type BehaviorType int

const (
	// BehaviorBat 蝙蝠：上下摆动，定期随机改变方向，碰到上下边界反弹
	BehaviorBat BehaviorType = iota
	// BehaviorBee 蜜蜂：沿正弦曲线飘动，完全离开上/下边界后自我删除
	BehaviorBee
	// BehaviorDragon 龙：在边界内反弹，周期性执行一次纵向"俯冲"
	BehaviorDragon
	// BehaviorExplosion 爆炸：播放固定帧数后自我删除
	BehaviorExplosion
)

// String 返回行为类型名称（用于日志）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorBat:
		return "bat"
	case BehaviorBee:
		return "bee"
	case BehaviorDragon:
		return "dragon"
	case BehaviorExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType
}
