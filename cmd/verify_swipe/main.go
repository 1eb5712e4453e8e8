// verify_swipe 无界面手势回放工具
//
// 读取 YAML 脚本，以固定帧率驱动卡片堆并打印回调顺序，
// 用于在没有窗口的环境下核对提交阈值、回弹和飞出时序。
//
// 用法:
//
//	go run ./cmd/verify_swipe --script cmd/verify_swipe/testdata/basic.yaml
//	go run ./cmd/verify_swipe --script my.yaml --deck data/deck.yaml --verbose
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/decker502/swipedeck/pkg/config"
)

var (
	scriptPath = flag.String("script", "", "手势脚本（YAML）")
	deckPath   = flag.String("deck", "", "卡片堆配置文件（默认使用脚本中的 deck 字段）")
	verbose    = flag.Bool("verbose", false, "显示卡片堆内部日志")
)

func main() {
	flag.Parse()
	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("脚本加载失败: %v", err)
	}

	path := *deckPath
	if path == "" {
		path = script.Deck
	}
	deck, err := config.LoadDeckConfig(path)
	if err != nil {
		log.Fatalf("卡片堆配置加载失败: %v", err)
	}

	var out io.Writer = os.Stdout
	if !*verbose {
		out = &eventsOnly{w: os.Stdout}
	}

	log.Printf("[VerifySwipe] %d cards, %d steps, fps=%d", len(script.Cards), len(script.Steps), deck.FPS)
	events, err := Run(script, deck, out)
	if err != nil {
		log.Fatalf("回放失败: %v", err)
	}
	log.Printf("[VerifySwipe] done, %d events", len(events))
}

// eventsOnly 丢弃以空格缩进的卡片堆内部日志
type eventsOnly struct {
	w io.Writer
}

func (e *eventsOnly) Write(p []byte) (int, error) {
	if len(p) > 0 && p[0] == ' ' {
		return len(p), nil
	}
	return e.w.Write(p)
}
