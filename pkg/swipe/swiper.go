package swipe

// initialEntranceProgress 第一张卡片从半程开始入场，缩短开场动画
const initialEntranceProgress = 0.5

// Swiper 可滑动卡片堆
//
// 组合 Deck、GestureTracker、Animator，负责：
//   - 拖拽开始判定与手势转发
//   - 提交时按顺序触发 HandleYup/HandleNope 和 OnCardRemoved
//   - 飞出结束后推进序列并重新入场
//   - 每帧计算 StackFrame 与提示样式
type Swiper[C any] struct {
	opts     Options[C]
	deck     *Deck[C]
	position *ValueXY
	progress *Value
	tracker  *GestureTracker
	animator *Animator

	// lastScale 新活动卡片在排队时的缩放，作为入场缩放的起点
	lastScale float64
}

// New 创建卡片堆并开始第一张卡片的入场动画
func New[C any](cards []C, opts Options[C]) *Swiper[C] {
	opts = opts.withFallbacks()

	position := NewValueXY(0, 0)
	progress := NewValue(initialEntranceProgress)
	tracker := NewGestureTracker(position, opts.OnlyHorizontal)
	tracker.SetDisabled(opts.DisableGestures)
	animator := NewAnimator(position, progress, opts.FPS)
	animator.SetExitEasing(opts.ExitEasing)

	s := &Swiper[C]{
		opts:      opts,
		deck:      NewDeck(cards, opts.Loop),
		position:  position,
		progress:  progress,
		tracker:   tracker,
		animator:  animator,
		lastScale: 1,
	}
	s.animator.PlayEntrance()
	s.opts.Logger("[Swiper] mounted with %d cards (loop=%v, stackDepth=%d)", len(cards), opts.Loop, opts.StackDepth)
	return s
}

// Options 返回当前配置
func (s *Swiper[C]) Options() Options[C] {
	return s.opts
}

// Position 活动卡片偏移（只读）
func (s *Swiper[C]) Position() XYReader {
	return s.position
}

// Progress 入场进度（只读）
func (s *Swiper[C]) Progress() Reader {
	return s.progress
}

// State 动画驱动器状态
func (s *Swiper[C]) State() AnimState {
	return s.animator.State()
}

// Index 当前卡片下标，耗尽时为 -1
func (s *Swiper[C]) Index() int {
	return s.deck.Index()
}

// Current 当前活动卡片
func (s *Swiper[C]) Current() (C, bool) {
	return s.deck.Current()
}

// Len 卡片数量
func (s *Swiper[C]) Len() int {
	return s.deck.Len()
}

// IsExhausted 是否已无卡片
func (s *Swiper[C]) IsExhausted() bool {
	return s.deck.IsExhausted()
}

// Dragging 是否处于拖拽会话中
func (s *Swiper[C]) Dragging() bool {
	return s.tracker.Tracking()
}

// SetDisableGestures 运行时禁用 / 启用拖拽
func (s *Swiper[C]) SetDisableGestures(disabled bool) {
	s.opts.DisableGestures = disabled
	s.tracker.SetDisabled(disabled)
}

// SetLoop 运行时修改循环标志
func (s *Swiper[C]) SetLoop(loop bool) {
	s.opts.Loop = loop
	s.deck.SetLoop(loop)
}

// SetFadeOnSwipe 运行时开关拖拽淡出
func (s *Swiper[C]) SetFadeOnSwipe(fade bool) {
	s.opts.FadeOnSwipe = fade
}

// CanDrag 当前是否允许开始拖拽
func (s *Swiper[C]) CanDrag() bool {
	return !s.deck.IsExhausted() && !s.tracker.Disabled() && !s.animator.Busy()
}

// PointerMove 转发一次指针移动
//
// dx/dy 为自按下以来的累计位移。尚未开始拖拽时先做起始判定，
// 返回值表示本次移动是否被卡片认领。
func (s *Swiper[C]) PointerMove(dx, dy float64) bool {
	if !s.tracker.Tracking() {
		if !s.CanDrag() || !s.tracker.ShouldStart(dx, dy) {
			return false
		}
		if !s.animator.BeginDrag() {
			return false
		}
		s.tracker.Grant()
		s.opts.Logger("[Swiper] drag granted on card %d", s.deck.Index())
	}
	s.tracker.Move(dx, dy)
	return true
}

// PointerRelease 指针释放，vx/vy 单位为像素/毫秒
// 未处于拖拽会话时忽略，返回 false
func (s *Swiper[C]) PointerRelease(vx, vy float64) (Decision, bool) {
	if !s.tracker.Tracking() {
		return Decision{}, false
	}
	d := s.tracker.Release(vx, vy)
	s.opts.Logger("[Swiper] release x=%.1f vx=%.2f regret=%v -> %s", d.X, vx, d.Regret, d.Outcome)
	if d.Outcome.IsCommit() {
		s.commit(d)
	} else {
		s.animator.PlayReturn()
	}
	return d, true
}

// PointerCancel 拖拽被外部打断，卡片回到中心
func (s *Swiper[C]) PointerCancel() {
	if !s.tracker.Tracking() {
		return
	}
	s.tracker.Terminate()
	s.opts.Logger("[Swiper] drag terminated, returning to deck")
	s.animator.PlayReturn()
}

// Swipe 以编程方式提交当前卡片（如键盘操作）
// 以最小飞出速度朝对应方向离场。DisableGestures 只禁止拖拽，不影响这里
func (s *Swiper[C]) Swipe(outcome Outcome) bool {
	if !outcome.IsCommit() || s.deck.IsExhausted() || s.animator.Busy() || s.tracker.Tracking() {
		return false
	}
	s.animator.BeginDrag()

	sign := 1.0
	if outcome == OutcomeNope {
		sign = -1.0
	}
	x := s.position.X()
	s.commit(Decision{Outcome: outcome, X: x, VelocityX: sign * minFlingSpeed})
	return true
}

// commit 触发回调并开始飞出
// 回调在飞出动画开始前调用，宿主可以与动画并行更新数据
func (s *Swiper[C]) commit(d Decision) {
	card, ok := s.deck.Current()
	if !ok {
		s.animator.PlayReturn()
		return
	}

	if d.Outcome == OutcomeYup {
		s.opts.HandleYup(card)
	} else {
		s.opts.HandleNope(card)
	}
	s.opts.OnCardRemoved(s.deck.Index())

	tx, ty := d.FlingTarget(ExitDurationMs)
	s.animator.PlayExit(tx, ty, s.finishExit)
}

// finishExit 飞出结束：复位偏移与入场进度，推进序列，开始下一张入场
func (s *Swiper[C]) finishExit() {
	s.position.Reset()
	s.progress.Set(0)
	if s.opts.Stack {
		s.lastScale = s.queuedScale(1)
	}
	s.deck.Advance()
	if s.deck.IsExhausted() {
		s.opts.Logger("[Swiper] deck exhausted")
	} else {
		s.opts.Logger("[Swiper] advanced to card %d", s.deck.Index())
	}
	s.animator.PlayEntrance()
}

// Replace 替换卡片序列
// 会中止正在进行的拖拽和动画，并让新的活动卡片重新入场。
// 替换为空序列时进入耗尽状态，Render 只调用 DrawNoMoreCards
func (s *Swiper[C]) Replace(cards []C, policy ResetPolicy) {
	if s.tracker.Tracking() {
		s.tracker.Terminate()
	}
	s.animator.Stop()
	s.deck.Replace(cards, policy)
	s.position.Reset()
	s.progress.Set(0)
	s.lastScale = 1
	s.animator.PlayEntrance()
	s.opts.Logger("[Swiper] deck replaced with %d cards, index=%d", len(cards), s.deck.Index())
}

// Update 推进一帧动画
func (s *Swiper[C]) Update() {
	s.animator.Tick()
}

// queuedScale 第 level 层排队卡片的缩放
func (s *Swiper[C]) queuedScale(level int) float64 {
	return 1 - float64(level)*s.opts.StackScaleStep
}

// Frames 计算当前帧需要绘制的卡片，由深到浅排列，活动卡片在最后
func (s *Swiper[C]) Frames() []StackFrame {
	depth := s.opts.StackDepth
	if !s.opts.Stack {
		depth = 1
	}
	indices := s.deck.StackIndices(depth)
	if len(indices) == 0 {
		return nil
	}

	pos := s.position.Get()
	progress := s.progress.Get()
	count := len(indices)
	frames := make([]StackFrame, 0, count)

	for order, idx := range indices {
		level := count - 1 - order
		f := StackFrame{
			Index:     idx,
			Level:     level,
			Opacity:   1,
			Elevation: order * 10,
		}

		if level == 0 {
			f.TranslateX = pos.X
			f.TranslateY = pos.Y
			f.Rotation = Rotation(pos.X)
			f.Scale = EntranceScale(progress, s.opts.Stack, s.lastScale)
			if s.opts.FadeOnSwipe {
				f.Opacity = FadeOpacity(pos.X)
			}
		} else {
			f.Left = StackOffset(level, s.opts.StackOffsetX, progress)
			f.Top = StackOffset(level, s.opts.StackOffsetY, progress)
			f.Scale = Lerp(s.queuedScale(level+1), s.queuedScale(level), progress)
		}
		frames = append(frames, f)
	}
	return frames
}

// Affordances 计算当前帧需要绘制的提示（先拒绝后接受）
// 设置了 RenderNope / RenderYup 的一侧不在结果中，由 Render 交给自定义渲染器
func (s *Swiper[C]) Affordances() []Affordance {
	x := s.position.X()
	var out []Affordance

	if s.opts.RenderNope == nil && s.opts.ShowNope {
		opacity, scale := NopeStyle(x)
		out = append(out, Affordance{
			Kind: AffordanceNope, Text: s.opts.NopeText, View: s.opts.NopeView,
			Opacity: opacity, Scale: scale,
		})
	}
	if s.opts.RenderYup == nil && s.opts.ShowYup {
		opacity, scale := YupStyle(x)
		out = append(out, Affordance{
			Kind: AffordanceYup, Text: s.opts.YupText, View: s.opts.YupView,
			Opacity: opacity, Scale: scale,
		})
	}
	return out
}

// Render 把当前帧交给合成器绘制
func (s *Swiper[C]) Render(c Composer[C]) {
	if s.deck.IsExhausted() {
		c.DrawNoMoreCards()
	} else {
		for _, f := range s.Frames() {
			card, ok := s.deck.At(f.Index)
			if !ok {
				continue
			}
			c.DrawCard(card, f)
		}
	}

	affordances := s.Affordances()
	next := 0
	if s.opts.RenderNope != nil {
		s.opts.RenderNope(s.position)
	} else if s.opts.ShowNope {
		c.DrawAffordance(affordances[next])
		next++
	}
	if s.opts.RenderYup != nil {
		s.opts.RenderYup(s.position)
	} else if s.opts.ShowYup {
		c.DrawAffordance(affordances[next])
	}
}
