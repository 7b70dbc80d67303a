package game

import "github.com/gonewx/skyhunt/pkg/config"

// Phase 游戏阶段
type Phase int

const (
	// PhaseIdle 等待点击开始（初始状态，也是每局结束后的状态）
	PhaseIdle Phase = iota
	// PhaseRunning 一局进行中
	PhaseRunning
)

// String 返回阶段名称，用于日志
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// HitOutcome 一次命中对难度的影响
type HitOutcome int

const (
	// HitScored 仅加分
	HitScored HitOutcome = iota
	// HitIntervalShortened 达到分数步长，生成间隔缩短
	HitIntervalShortened
	// HitSpeedBoosted 间隔已到下限，被击中的敌人类型加速
	HitSpeedBoosted
)

// GameState 存储一局游戏的状态
//
// 由游戏场景持有，并作为参数传给各个系统。
type GameState struct {
	Phase Phase

	Score     int // 当前分数
	LastScore int // 上一局结束时的分数
	Rounds    int // 已结束的局数

	SpawnIntervalMs    float64 // 当前生成间隔
	SpawnAccumulatorMs float64 // 距离上次生成经过的时间

	// SpeedBonus 每种敌人类型的额外水平速度，作用于之后生成的敌人
	SpeedBonus map[string]float64

	gameOverRequested bool
	rules             config.SpawnConfig
}

// NewGameState 创建处于空闲阶段的游戏状态
func NewGameState(rules config.SpawnConfig) *GameState {
	return &GameState{
		Phase:           PhaseIdle,
		SpawnIntervalMs: rules.InitialIntervalMs,
		SpeedBonus:      make(map[string]float64),
		rules:           rules,
	}
}

// Rules 返回生成规则
func (gs *GameState) Rules() config.SpawnConfig {
	return gs.rules
}

// StartRound 开始新的一局
//
// 分数清零，生成间隔和计时器复位，清除所有速度加成。
// 实体的清理由场景负责。
func (gs *GameState) StartRound() {
	gs.Phase = PhaseRunning
	gs.Score = 0
	gs.SpawnIntervalMs = gs.rules.InitialIntervalMs
	gs.SpawnAccumulatorMs = 0
	gs.SpeedBonus = make(map[string]float64)
	gs.gameOverRequested = false
}

// RequestGameOver 标记本局结束；在当前 tick 的更新完成后生效
func (gs *GameState) RequestGameOver() {
	if gs.Phase == PhaseRunning {
		gs.gameOverRequested = true
	}
}

// GameOverRequested 本 tick 内是否有敌人越过左边界
func (gs *GameState) GameOverRequested() bool {
	return gs.gameOverRequested
}

// EndRound 结束本局，保留分数为 LastScore 并回到空闲阶段
func (gs *GameState) EndRound() {
	gs.LastScore = gs.Score
	gs.Score = 0
	gs.Rounds++
	gs.Phase = PhaseIdle
	gs.gameOverRequested = false
}

// IsRunning 是否处于一局进行中
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// IsFirstGame 是否还没有结束过任何一局
func (gs *GameState) IsFirstGame() bool {
	return gs.Rounds == 0
}

// AdvanceSpawnTimer 推进生成计时器，到期时返回 true 并把计时器清零
//
// 计时器正好等于间隔时也算到期。
func (gs *GameState) AdvanceSpawnTimer(deltaMs float64) bool {
	gs.SpawnAccumulatorMs += deltaMs
	if gs.SpawnAccumulatorMs >= gs.SpawnIntervalMs {
		gs.SpawnAccumulatorMs = 0
		return true
	}
	return false
}

// RegisterHit 记录一次命中并按分数步长调整难度
func (gs *GameState) RegisterHit(kind string) HitOutcome {
	gs.Score++

	if gs.rules.ScoreStep <= 0 || gs.Score%gs.rules.ScoreStep != 0 {
		return HitScored
	}

	if gs.SpawnIntervalMs > gs.rules.MinIntervalMs {
		gs.SpawnIntervalMs -= gs.rules.IntervalStepMs
		if gs.SpawnIntervalMs < gs.rules.MinIntervalMs {
			gs.SpawnIntervalMs = gs.rules.MinIntervalMs
		}
		return HitIntervalShortened
	}

	gs.SpeedBonus[kind] += gs.rules.SpeedBoost
	return HitSpeedBoosted
}

// SpeedBonusFor 返回某种敌人类型当前的速度加成
func (gs *GameState) SpeedBonusFor(kind string) float64 {
	return gs.SpeedBonus[kind]
}
