package components

// EnemyComponent 敌人的公共数据
//
// 与 PositionComponent、SpriteSheetComponent、AnimationComponent、CueComponent
// 一起构成一个敌人；具体运动参数见各 *MotionComponent。
type EnemyComponent struct {
	Kind   string  // 敌人类型ID（如 "bat"）
	SpeedX float64 // 水平速度（像素/tick，向左）
}

// BatMotionComponent 蝙蝠运动状态
type BatMotionComponent struct {
	DirectionY     float64 // 当前纵向位移（每 tick 执行 y -= DirectionY）
	TurnIntervalMs float64 // 重新随机方向的间隔
	TurnAcc        float64 // 方向计时器
	TurnSpread     float64 // 随机角度范围，DirectionY = sin(rand*TurnSpread)
}

// BeeMotionComponent 蜜蜂运动状态
type BeeMotionComponent struct {
	Angle      float64
	AngleSpeed float64
	Curve      float64 // 曲线幅度
}

// DragonMotionComponent 龙运动状态
type DragonMotionComponent struct {
	SwipeIntervalMs   float64 // 两次俯冲之间的间隔
	SwipeAcc          float64 // 俯冲计时器
	DirectionY        float64 // +1 向下，-1 向上
	VelocityY         float64 // 俯冲时每 tick 的纵向位移
	MoveBudget        float64 // 本次俯冲剩余预算
	BudgetReduction   float64 // 每 tick 消耗的预算
	ResetBudgetMin    float64 // 重置预算时的下限
	ResetBudgetJitter float64 // 重置预算时的随机增量
}
