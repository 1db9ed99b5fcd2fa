package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（为空时使用内嵌的 data/pong.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	var (
		gameConfig *config.PongConfig
		err        error
	)
	if *configPath != "" {
		gameConfig, err = config.LoadPongConfig(*configPath)
	} else {
		gameConfig, err = config.LoadEmbeddedPongConfig()
	}
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Game:    gameConfig,
		Seed:    *seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	if err := gameApp.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
