package scenes

import (
	"github.com/gonewx/skyhunt/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查 GameScene 满足场景与退出保存接口
var (
	_ Scene         = (*GameScene)(nil)
	_ game.Saveable = (*GameScene)(nil)
)
