// Package termdeck 终端版卡片堆
//
// bubbletea 驱动：鼠标拖拽（cell motion）换算为像素位移交给 swipe.Swiper，
// 定时 tick 推进动画，lipgloss 绘制卡片和 Yup / Nope 标签。
package termdeck

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/swipe"
)

// 一个终端单元格对应的逻辑像素
// 动画阈值（120 像素提交、5 像素起始）按像素定义，终端坐标需要换算
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// CardColumns 卡片宽度（列）
const CardColumns = 36

// TickMsg 动画帧消息
type TickMsg time.Time

// Options 终端卡片堆配置
type Options struct {
	Deck  config.DeckConfig
	Cards []config.Card
	// Now 为空时使用 time.Now（测试时注入）
	Now func() time.Time
	// Logger 卡片堆内部日志，为空时丢弃
	Logger func(format string, args ...any)
}

// Model bubbletea 模型
type Model struct {
	swiper   *swipe.Swiper[config.Card]
	cards    []config.Card
	fps      int
	now      func() time.Time
	started  time.Time
	velocity *swipe.VelocityTracker

	width, height  int
	pressing       bool
	startX, startY int

	yups, nopes int
	lastEvent   string
}

// New 创建终端卡片堆模型
func New(opts Options) *Model {
	m := &Model{
		cards:     opts.Cards,
		fps:       opts.Deck.FPS,
		now:       opts.Now,
		velocity:  swipe.NewVelocityTracker(),
		width:     80,
		height:    24,
		lastEvent: "drag a card with the mouse, or press ← / →",
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.fps <= 0 {
		m.fps = 60
	}
	m.started = m.now()

	swOpts := config.ToOptions[config.Card](opts.Deck)
	swOpts.FPS = m.fps
	if opts.Logger != nil {
		swOpts.Logger = opts.Logger
	}
	swOpts.HandleYup = func(c config.Card) {
		m.yups++
		m.lastEvent = fmt.Sprintf("yup: %s", c.Title)
	}
	swOpts.HandleNope = func(c config.Card) {
		m.nopes++
		m.lastEvent = fmt.Sprintf("nope: %s", c.Title)
	}
	m.swiper = swipe.New(opts.Cards, swOpts)
	return m
}

// Swiper 返回底层卡片堆
func (m *Model) Swiper() *swipe.Swiper[config.Card] {
	return m.swiper
}

// Tally 返回接受 / 拒绝计数
func (m *Model) Tally() (yups, nopes int) {
	return m.yups, m.nopes
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init 启动动画 tick
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update 处理消息
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case TickMsg:
		m.swiper.Update()
		return m, m.tick()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "right", "l":
		m.swiper.Swipe(swipe.OutcomeYup)
	case "left", "h":
		m.swiper.Swipe(swipe.OutcomeNope)
	case "f":
		fade := !m.swiper.Options().FadeOnSwipe
		m.swiper.SetFadeOnSwipe(fade)
		m.lastEvent = fmt.Sprintf("fade on swipe: %v", fade)
	case "o":
		loop := !m.swiper.Options().Loop
		m.swiper.SetLoop(loop)
		m.lastEvent = fmt.Sprintf("loop: %v", loop)
	case "r":
		m.cancelDrag()
		m.swiper.Replace(m.cards, swipe.ResetToStart)
		m.yups, m.nopes = 0, 0
		m.lastEvent = "restarted"
	}
	return nil
}

func (m *Model) elapsedMs() float64 {
	return float64(m.now().Sub(m.started)) / float64(time.Millisecond)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X)*CellWidthPx, float64(msg.Y)*CellHeightPx

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.hitCard(msg.X) || !m.swiper.CanDrag() {
			return
		}
		m.pressing = true
		m.startX, m.startY = msg.X, msg.Y
		m.velocity.Reset()
		m.velocity.AddSample(x, y, m.elapsedMs())

	case tea.MouseActionMotion:
		if !m.pressing {
			return
		}
		m.velocity.AddSample(x, y, m.elapsedMs())
		dx := float64(msg.X-m.startX) * CellWidthPx
		dy := float64(msg.Y-m.startY) * CellHeightPx
		m.swiper.PointerMove(dx, dy)

	case tea.MouseActionRelease:
		if !m.pressing {
			return
		}
		m.pressing = false
		// 按住不动后松手，速度应当归零
		m.velocity.AddSample(x, y, m.elapsedMs())
		vx, vy := m.velocity.Velocity()
		if d, ok := m.swiper.PointerRelease(vx, vy); ok && !d.Outcome.IsCommit() {
			m.lastEvent = fmt.Sprintf("returned (x=%.0f)", d.X)
		}
	}
}

func (m *Model) cancelDrag() {
	if m.pressing {
		m.pressing = false
		m.swiper.PointerCancel()
	}
}

// hitCard 按下的列是否落在静止卡片范围内
func (m *Model) hitCard(col int) bool {
	left := m.cardLeft()
	return col >= left && col < left+CardColumns+2
}

// cardLeft 静止卡片左边框所在列
func (m *Model) cardLeft() int {
	left := (m.width - CardColumns - 2) / 2
	if left < 0 {
		return 0
	}
	return left
}
