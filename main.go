package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/swipedeck/pkg/app"
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/embedded"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configPath = flag.String("config", "", "卡片堆配置文件（默认使用内置 data/deck.yaml）")
	cardsPath  = flag.String("cards", "", "卡片集合文件（默认使用内置 data/cards.yaml）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		DeckConfigPath: *configPath,
		CardsPath:      *cardsPath,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Swipe Deck")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if gameApp.Settings().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
