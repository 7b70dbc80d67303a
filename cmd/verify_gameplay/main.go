// verify_gameplay 无窗口地运行游戏循环，用一个自动玩家验证生成、命中与难度曲线
//
//	go run ./cmd/verify_gameplay --ticks 36000 --accuracy 0.9 --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/skyhunt/pkg/components"
	"github.com/gonewx/skyhunt/pkg/config"
	"github.com/gonewx/skyhunt/pkg/ecs"
	"github.com/gonewx/skyhunt/pkg/scenes"
)

var (
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	variant    = flag.String("variant", "", "覆盖变体: classic 或 enhanced")
	ticks      = flag.Int("ticks", 60*60*10, "模拟的 tick 数（60 TPS）")
	seed       = flag.Int64("seed", 1, "随机种子")
	accuracy   = flag.Float64("accuracy", 0.8, "自动玩家每次出手命中的概率")
	reaction   = flag.Int("reaction", 20, "自动玩家两次出手之间的 tick 数")
	verbose    = flag.Bool("verbose", false, "显示系统日志")
)

// bot 每隔 reaction 个 tick 瞄准最靠左的敌人
type bot struct {
	rng      *rand.Rand
	accuracy float64
	reaction int
	cooldown int
}

// next 返回本 tick 的输入
func (b *bot) next(s *scenes.GameScene) scenes.FrameInput {
	if !s.GameState().IsRunning() {
		return scenes.FrameInput{Click: true}
	}
	if b.cooldown > 0 {
		b.cooldown--
		return scenes.FrameInput{}
	}

	target, ok := leftmostEnemy(s)
	if !ok {
		return scenes.FrameInput{}
	}
	b.cooldown = b.reaction

	x, y := target.x+target.w/2, target.y+target.h/2
	if b.rng.Float64() >= b.accuracy {
		// 打偏：落在敌人框外
		x = target.x - 1
	}
	return scenes.FrameInput{Click: true, X: x, Y: y}
}

type box struct {
	x, y, w, h float64
}

func leftmostEnemy(s *scenes.GameScene) (box, bool) {
	em := s.EntityManager()
	var best box
	found := false
	for _, id := range s.Enemies() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sheet, _ := ecs.GetComponent[*components.SpriteSheetComponent](em, id)
		if !found || pos.X < best.x {
			best = box{x: pos.X, y: pos.Y, w: sheet.DrawnWidth(), h: sheet.DrawnHeight()}
			found = true
		}
	}
	return best, found
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if *variant != "" {
		cfg.Variant = config.Variant(*variant)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	}

	scene := scenes.NewGameScene(nil, nil, nil, cfg, rand.New(rand.NewSource(*seed)))
	player := &bot{rng: rand.New(rand.NewSource(*seed + 1)), accuracy: *accuracy, reaction: *reaction}
	tickMs := 1000.0 / 60.0

	gs := scene.GameState()
	best, maxEnemies := 0, 0
	for i := 0; i < *ticks; i++ {
		wasRunning := gs.IsRunning()
		scene.Tick(tickMs, player.next(scene))

		if n := len(scene.Enemies()); n > maxEnemies {
			maxEnemies = n
		}
		if wasRunning && !gs.IsRunning() {
			fmt.Printf("第 %d 局结束: %d 分 (tick %d)\n", gs.Rounds, gs.LastScore, i)
			if gs.LastScore > best {
				best = gs.LastScore
			}
		}
		if gs.Score > best {
			best = gs.Score
		}
	}

	fmt.Println("=== 模拟结果 ===")
	fmt.Printf("变体: %s, tick 数: %d (%.1f 秒)\n", cfg.Variant, *ticks, float64(*ticks)/60)
	fmt.Printf("完成局数: %d, 最高分: %d, 当前分: %d\n", gs.Rounds, best, gs.Score)
	fmt.Printf("当前生成间隔: %.0fms, 同屏最多敌人: %d\n", gs.SpawnIntervalMs, maxEnemies)
	for _, enemy := range cfg.Enemies {
		fmt.Printf("  %s 速度加成: %.1f\n", enemy.Kind, gs.SpeedBonusFor(enemy.Kind))
	}
}
