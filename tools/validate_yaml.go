package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/skyhunt/pkg/config"
)

// 校验游戏配置：未知字段、取值范围、资源文件是否存在
//
//	go run tools/validate_yaml.go [data/game.yaml]
func main() {
	path := "data/game.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 严格模式拒绝拼写错误的字段
	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)
	var raw config.GameConfig
	if err := strict.Decode(&raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 变体: %s, 窗口 %dx%d\n", cfg.Variant, cfg.Window.Width, cfg.Window.Height)
	fmt.Printf("✅ 敌人类型数量: %d\n", len(cfg.Enemies))

	assets := []string{cfg.Explosion.Sprite, cfg.Explosion.Cue, cfg.Background.Image}
	for _, enemy := range cfg.Enemies {
		assets = append(assets, enemy.Sprite, enemy.Cue)
	}
	for _, layer := range cfg.Background.Layers {
		assets = append(assets, layer.Image)
	}

	missing := 0
	for _, asset := range assets {
		if asset == "" {
			continue
		}
		if _, err := os.Stat(asset); err != nil {
			fmt.Printf("⚠️  资源缺失(运行时使用占位): %s\n", asset)
			missing++
		}
	}
	if missing == 0 {
		fmt.Printf("✅ 所有资源文件存在\n")
	}
}
