package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/swipedeck/pkg/swipe"
	"github.com/decker502/swipedeck/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// PointerState 返回是否按下以及当前位置（触摸优先）
	PointerState() (pressed bool, x, y int)
	// IsFocused 窗口是否拥有焦点
	IsFocused() bool
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

func (e *ebitenPointerInput) IsFocused() bool {
	return ebiten.IsFocused()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// SwipeTarget 可被拖拽的卡片堆
// *swipe.Swiper 满足此接口
type SwipeTarget interface {
	CanDrag() bool
	PointerMove(dx, dy float64) bool
	PointerRelease(vx, vy float64) (swipe.Decision, bool)
	PointerCancel()
}

// HitTestFunc 判断屏幕坐标是否落在活动卡片上
type HitTestFunc func(x, y float64) bool

// SwipeInputSystem 卡片拖拽输入系统
//
// 职责：
//   - 检测在活动卡片上的按下，开始一次指针会话
//   - 按住期间把累计位移转发给 SwipeTarget（起始阈值由卡片堆判断）
//   - 释放时估计速度（像素/毫秒）并提交
//   - 窗口失去焦点时取消拖拽，卡片回到中心
type SwipeInputSystem struct {
	input    PointerInput
	target   SwipeTarget
	hitTest  HitTestFunc
	velocity *swipe.VelocityTracker

	elapsedMs      float64
	wasPressed     bool
	session        bool // 按下发生在卡片上，正在跟踪
	startX, startY float64
	lastDX, lastDY float64
	onDecision     func(swipe.Decision)
}

// NewSwipeInputSystem 创建拖拽输入系统
func NewSwipeInputSystem(target SwipeTarget, hitTest HitTestFunc) *SwipeInputSystem {
	return NewSwipeInputSystemWithInput(target, hitTest, defaultPointerInput)
}

// NewSwipeInputSystemWithInput 创建带自定义指针输入的拖拽输入系统（用于测试）
func NewSwipeInputSystemWithInput(target SwipeTarget, hitTest HitTestFunc, input PointerInput) *SwipeInputSystem {
	return &SwipeInputSystem{
		input:    input,
		target:   target,
		hitTest:  hitTest,
		velocity: swipe.NewVelocityTracker(),
	}
}

// OnDecision 设置释放判定回调（用于 HUD 显示）
func (s *SwipeInputSystem) OnDecision(fn func(swipe.Decision)) {
	s.onDecision = fn
}

// InSession 是否有进行中的指针会话
func (s *SwipeInputSystem) InSession() bool {
	return s.session
}

// Update 处理一帧指针输入
func (s *SwipeInputSystem) Update(deltaTime float64) {
	s.elapsedMs += deltaTime * 1000

	pressed, ix, iy := s.input.PointerState()
	x, y := float64(ix), float64(iy)
	justPressed := pressed && !s.wasPressed
	s.wasPressed = pressed

	if s.session && !s.input.IsFocused() {
		log.Printf("[SwipeInput] focus lost, cancelling drag")
		s.Cancel()
		return
	}

	switch {
	case justPressed:
		if s.target == nil || !s.target.CanDrag() || (s.hitTest != nil && !s.hitTest(x, y)) {
			return
		}
		s.session = true
		s.startX, s.startY = x, y
		s.lastDX, s.lastDY = 0, 0
		s.velocity.Reset()
		s.velocity.AddSample(x, y, s.elapsedMs)

	case pressed && s.session:
		s.velocity.AddSample(x, y, s.elapsedMs)
		dx, dy := x-s.startX, y-s.startY
		if dx == s.lastDX && dy == s.lastDY {
			return
		}
		s.lastDX, s.lastDY = dx, dy
		s.target.PointerMove(dx, dy)

	case !pressed && s.session:
		s.session = false
		vx, vy := s.velocity.Velocity()
		if d, ok := s.target.PointerRelease(vx, vy); ok {
			log.Printf("[SwipeInput] release x=%.1f v=(%.2f, %.2f) -> %s", d.X, vx, vy, d.Outcome)
			if s.onDecision != nil {
				s.onDecision(d)
			}
		}
	}
}

// Cancel 结束当前会话，卡片回到中心（如卡片堆被替换时）
func (s *SwipeInputSystem) Cancel() {
	if !s.session {
		return
	}
	s.session = false
	if s.target != nil {
		s.target.PointerCancel()
	}
}
