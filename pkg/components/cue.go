package components

// CueComponent 实体的一次性提示音
//
// 实体第一次在第 0 帧被呈现时播放，之后不再播放；
// 实体被清理时正在播放的提示音会被停止。
type CueComponent struct {
	SoundID string // 音效资源路径
	Played  bool
}
