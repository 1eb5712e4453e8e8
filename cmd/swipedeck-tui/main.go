// swipedeck-tui 在终端里运行的卡片堆演示
//
// 用法（在仓库根目录执行，默认读取 data/ 下的配置）:
//
//	go run ./cmd/swipedeck-tui
//	go run ./cmd/swipedeck-tui --cards my_cards.yaml --log-file /tmp/swipedeck.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/swipedeck/internal/termdeck"
	"github.com/decker502/swipedeck/pkg/config"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath, deckPath, cardsPath, logFile string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/swipedeck/tui.yml)")
	flag.StringVar(&deckPath, "deck", "", "override deck config file")
	flag.StringVar(&cardsPath, "cards", "", "override card set file")
	flag.StringVar(&logFile, "log-file", "", "write debug log to this file")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Swipe Deck - Terminal Client\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if deckPath != "" {
		cfg.DeckConfig = deckPath
	}
	if cardsPath != "" {
		cfg.Cards = cardsPath
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	// 终端被 TUI 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "swipedeck")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	deck, err := config.LoadDeckConfig(cfg.DeckConfig)
	if err != nil {
		return err
	}
	if cfg.FPS > 0 {
		deck.FPS = cfg.FPS
	}

	set, err := config.LoadCardSet(cfg.Cards)
	if err != nil {
		return err
	}
	log.Printf("[TUI] Loaded %d cards from %s", len(set.Cards), cfg.Cards)

	m := termdeck.New(termdeck.Options{
		Deck:   deck,
		Cards:  set.Cards,
		Logger: log.Printf,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	yups, nopes := m.Tally()
	fmt.Printf("yup %d, nope %d\n", yups, nopes)
	return nil
}
