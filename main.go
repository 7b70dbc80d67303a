package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/skyhunt/pkg/app"
	"github.com/gonewx/skyhunt/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	variant := flag.String("variant", "", "游戏变体: classic 或 enhanced（默认使用配置文件）")
	configPath := flag.String("config", app.DefaultConfigPath, "游戏配置文件路径")
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Variant:    *variant,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先保存设置
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
