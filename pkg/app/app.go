// Package app 提供演示程序的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/embedded"
	"github.com/decker502/swipedeck/pkg/game"
	"github.com/decker502/swipedeck/pkg/scenes"
	"github.com/decker502/swipedeck/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "swipedeck"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DeckConfigPath 卡片堆配置文件，为空时使用嵌入的 data/deck.yaml
	DeckConfigPath string
	// CardsPath 卡片集合文件，为空时使用嵌入的 data/cards.yaml
	CardsPath string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	tickSeconds              float64
}

// NewApp 创建并初始化演示程序
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	deckCfg, err := LoadDeckConfig(cfg.DeckConfigPath)
	if err != nil {
		return nil, fmt.Errorf("卡片堆配置加载失败: %w", err)
	}
	log.Printf("[Config] Deck config: stack=%v depth=%d fps=%d", deckCfg.Stack, deckCfg.StackDepth, deckCfg.FPS)

	cardsPath := cfg.CardsPath
	if cardsPath == "" {
		cardsPath = config.DefaultCardSetPath
	}
	cardSet, err := config.LoadCardSet(cardsPath)
	if err != nil {
		return nil, fmt.Errorf("卡片加载失败: %w", err)
	}
	log.Printf("[Config] Loaded card set %q with %d cards", cardSet.Name, len(cardSet.Cards))

	settings := game.NewSettingsManager(openStorage(), game.DemoSettings{
		FadeOnSwipe:     deckCfg.FadeOnSwipe,
		Loop:            deckCfg.Loop,
		DisableGestures: deckCfg.DisableGestures,
	})

	scene, err := scenes.NewDeckScene(scenes.DeckSceneConfig{
		Deck:     deckCfg,
		Cards:    cardSet.Cards,
		Settings: settings,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Deck scene ready")

	// 动画驱动器每次 Update 推进 1/FPS 秒，保持与 TPS 一致
	ebiten.SetTPS(deckCfg.FPS)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
		tickSeconds:  1.0 / float64(deckCfg.FPS),
	}, nil
}

// LoadDeckConfig 加载卡片堆配置
// path 为空或以 data/ 开头时从嵌入资源读取，否则从磁盘读取
func LoadDeckConfig(path string) (config.DeckConfig, error) {
	if path == "" {
		path = config.DefaultDeckConfigPath
	}
	if strings.HasPrefix(path, "data/") && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return config.DeckConfig{}, err
		}
		return config.ParseDeckConfig(data)
	}
	return config.LoadDeckConfig(path)
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置降级为仅内存）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v (memory only)", err)
		return nil
	}
	return m
}

// Update 更新逻辑，每个 tick 调用一次
// 窗口关闭时保存偏好并返回 ebiten.Termination
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveCurrentScene()
		log.Printf("[App] Window closed, settings saved")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(a.tickSeconds)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Settings 返回偏好设置（启动时用于恢复全屏）
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// GetSceneManager 返回场景管理器
// 用于在程序关闭时保存偏好
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
