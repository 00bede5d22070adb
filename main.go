package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/inoutanim/pkg/app"
	"github.com/decker502/inoutanim/pkg/config"
	"github.com/decker502/inoutanim/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", config.DefaultOutlineConfigPath, "轮廓配置文件（嵌入资源路径）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	demo, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("拖拽轮廓 - 可中断淡入淡出")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
