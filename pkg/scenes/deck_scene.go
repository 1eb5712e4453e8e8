package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/ecs"
	"github.com/decker502/swipedeck/pkg/entities"
	"github.com/decker502/swipedeck/pkg/game"
	"github.com/decker502/swipedeck/pkg/swipe"
	"github.com/decker502/swipedeck/pkg/systems"
	"github.com/decker502/swipedeck/pkg/utils"
)

var backgroundColor = color.RGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xff}

// KeyInput 键盘输入接口
// 用于依赖注入，支持测试时 mock
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyInput Ebitengine 默认实现
type ebitenKeyInput struct{}

func (e *ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DeckSceneConfig 卡片堆场景的依赖
type DeckSceneConfig struct {
	Deck     config.DeckConfig
	Cards    []config.Card
	Settings *game.SettingsManager

	// 以下字段为空时使用 Ebitengine 输入（测试时注入 mock）
	Keys    KeyInput
	Pointer systems.PointerInput
}

// DeckScene 卡片堆演示场景
//
// 职责：
//   - 拖拽卡片（鼠标 / 触摸），方向键以编程方式提交
//   - F / L / G 切换淡出、循环、禁用拖拽并保存偏好
//   - R 重新开始整副卡片
//   - 底部 HUD 显示统计和最近一次操作
type DeckScene struct {
	entityManager *ecs.EntityManager
	swiper        *swipe.Swiper[config.Card]
	inputSystem   *systems.SwipeInputSystem
	renderSystem  *systems.CardRenderSystem
	settings      *game.SettingsManager
	keys          KeyInput

	cards       []config.Card
	yups, nopes int
	lastEvent   string
}

// NewDeckScene 创建卡片堆演示场景
func NewDeckScene(cfg DeckSceneConfig) (*DeckScene, error) {
	scene := &DeckScene{
		entityManager: ecs.NewEntityManager(),
		settings:      cfg.Settings,
		keys:          cfg.Keys,
		cards:         cfg.Cards,
		lastEvent:     "drag a card, or press ← / →",
	}
	if scene.keys == nil {
		scene.keys = &ebitenKeyInput{}
	}
	if scene.settings == nil {
		scene.settings = game.NewSettingsManager(nil, game.DemoSettings{
			FadeOnSwipe:     cfg.Deck.FadeOnSwipe,
			Loop:            cfg.Deck.Loop,
			DisableGestures: cfg.Deck.DisableGestures,
		})
	}

	if err := entities.RebuildCardFaces(scene.entityManager, cfg.Cards); err != nil {
		return nil, fmt.Errorf("failed to build card faces: %w", err)
	}
	log.Printf("[DeckScene] Built %d card faces", len(cfg.Cards))

	prefs := scene.settings.GetSettings()
	opts := config.ToOptions[config.Card](cfg.Deck)
	opts.FadeOnSwipe = prefs.FadeOnSwipe
	opts.Loop = prefs.Loop
	opts.DisableGestures = prefs.DisableGestures
	opts.HandleYup = scene.handleYup
	opts.HandleNope = scene.handleNope
	opts.OnCardRemoved = func(index int) {
		log.Printf("[DeckScene] Card %d removed", index)
	}
	opts.Logger = log.Printf

	scene.swiper = swipe.New(cfg.Cards, opts)
	scene.renderSystem = systems.NewCardRenderSystem(scene.entityManager)
	if cfg.Pointer != nil {
		scene.inputSystem = systems.NewSwipeInputSystemWithInput(scene.swiper, scene.hitTest, cfg.Pointer)
	} else {
		scene.inputSystem = systems.NewSwipeInputSystem(scene.swiper, scene.hitTest)
	}
	scene.inputSystem.OnDecision(func(d swipe.Decision) {
		if !d.Outcome.IsCommit() {
			scene.lastEvent = fmt.Sprintf("returned (x=%.0f)", d.X)
		}
	})

	return scene, nil
}

// hitTest 按活动卡片当前的偏移做命中判定，回弹中的卡片可以在绘制位置抓起
func (s *DeckScene) hitTest(x, y float64) bool {
	p := s.swiper.Position().Get()
	return hitActiveCard(x, y, p.X, p.Y)
}

// hitActiveCard 按下位置是否落在偏移 (dx, dy) 后的活动卡片上
func hitActiveCard(x, y, dx, dy float64) bool {
	return math.Abs(x-config.DeckCenterX-dx) <= config.CardWidth/2 &&
		math.Abs(y-config.DeckCenterY-dy) <= config.CardHeight/2
}

func (s *DeckScene) handleYup(card config.Card) {
	s.yups++
	s.lastEvent = fmt.Sprintf("yup: %s", card.Title)
	log.Printf("[DeckScene] Yup %q (%s)", card.Title, card.ID)
}

func (s *DeckScene) handleNope(card config.Card) {
	s.nopes++
	s.lastEvent = fmt.Sprintf("nope: %s", card.Title)
	log.Printf("[DeckScene] Nope %q (%s)", card.Title, card.ID)
}

// Swiper 返回场景的卡片堆
func (s *DeckScene) Swiper() *swipe.Swiper[config.Card] {
	return s.swiper
}

// Tally 返回接受 / 拒绝计数
func (s *DeckScene) Tally() (yups, nopes int) {
	return s.yups, s.nopes
}

// ReplaceCards 替换卡片集合（如重新加载 cards.yaml）
func (s *DeckScene) ReplaceCards(cards []config.Card, policy swipe.ResetPolicy) error {
	s.inputSystem.Cancel()
	if err := entities.RebuildCardFaces(s.entityManager, cards); err != nil {
		return fmt.Errorf("failed to build card faces: %w", err)
	}
	s.cards = cards
	s.swiper.Replace(cards, policy)
	return nil
}

// Update 更新场景
func (s *DeckScene) Update(deltaTime float64) {
	s.handleKeys()
	s.inputSystem.Update(deltaTime)
	s.swiper.Update()
}

// handleKeys 处理键盘快捷键
func (s *DeckScene) handleKeys() {
	switch {
	case s.keys.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.swiper.Swipe(swipe.OutcomeYup)
	case s.keys.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.swiper.Swipe(swipe.OutcomeNope)
	case s.keys.IsKeyJustPressed(ebiten.KeyF):
		fade := s.settings.ToggleFadeOnSwipe()
		s.swiper.SetFadeOnSwipe(fade)
		s.lastEvent = fmt.Sprintf("fade on swipe: %s", onOff(fade))
		s.saveSettings()
	case s.keys.IsKeyJustPressed(ebiten.KeyL):
		loop := s.settings.ToggleLoop()
		s.swiper.SetLoop(loop)
		s.lastEvent = fmt.Sprintf("loop: %s", onOff(loop))
		s.saveSettings()
	case s.keys.IsKeyJustPressed(ebiten.KeyG):
		disabled := s.settings.ToggleDisableGestures()
		s.inputSystem.Cancel()
		s.swiper.SetDisableGestures(disabled)
		s.lastEvent = fmt.Sprintf("gestures: %s", onOff(!disabled))
		s.saveSettings()
	case s.keys.IsKeyJustPressed(ebiten.KeyR):
		if err := s.ReplaceCards(s.cards, swipe.ResetToStart); err != nil {
			log.Printf("[DeckScene] Restart failed: %v", err)
			return
		}
		s.yups, s.nopes = 0, 0
		s.lastEvent = "restarted"
	}
}

func (s *DeckScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[DeckScene] Warning: %v", err)
	}
}

// SaveOnExit 退出时保存偏好
func (s *DeckScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Printf("[DeckScene] Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// Draw 绘制场景
func (s *DeckScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen, s.swiper)
	s.drawHUD(screen)
}

// drawHUD 绘制底部统计和快捷键提示
func (s *DeckScene) drawHUD(screen *ebiten.Image) {
	prefs := s.settings.GetSettings()

	position := "-"
	if !s.swiper.IsExhausted() {
		position = fmt.Sprintf("%d/%d", s.swiper.Index()+1, s.swiper.Len())
	}
	lines := []string{
		fmt.Sprintf("yup %d  nope %d  card %s  [%s]", s.yups, s.nopes, position, s.swiper.State()),
		fmt.Sprintf("[F]ade %s  [L]oop %s  [G]estures %s  [R]estart",
			onOff(prefs.FadeOnSwipe), onOff(prefs.Loop), onOff(!prefs.DisableGestures)),
		s.lastEvent,
	}
	if utils.IsMobile() {
		lines[1] = "swipe the card left or right"
	}

	y := config.HUDY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 12, y)
		y += utils.DebugLineHeight
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
