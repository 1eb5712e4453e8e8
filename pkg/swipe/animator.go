package swipe

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// AnimState 动画驱动器状态
// 任一时刻只有一个状态成立，卡片偏移只被一个程序驱动
type AnimState int

const (
	// AnimIdle 静止
	AnimIdle AnimState = iota
	// AnimDragging 用户拖拽中（偏移由手势写入）
	AnimDragging
	// AnimEntering 入场弹簧（驱动入场进度）
	AnimEntering
	// AnimReturning 回弹弹簧（偏移回到中心）
	AnimReturning
	// AnimExiting 飞出动画（固定时长线性运动）
	AnimExiting
)

// String 返回状态名称（用于日志）
func (s AnimState) String() string {
	switch s {
	case AnimDragging:
		return "dragging"
	case AnimEntering:
		return "entering"
	case AnimReturning:
		return "returning"
	case AnimExiting:
		return "exiting"
	default:
		return "idle"
	}
}

const (
	// ExitDurationMs 飞出动画时长（毫秒）
	ExitDurationMs = 200.0

	// 弹簧参数（tension / friction 形式）
	springTension    = 40.0
	entranceFriction = 8.0
	returnFriction   = 4.0

	// 弹簧静止判定阈值
	positionRestDisplacement = 0.05
	positionRestSpeed        = 0.5
	progressRestDisplacement = 0.001
	progressRestSpeed        = 0.01
)

// springParams 把 tension / friction 参数转换为 harmonica 的角频率和阻尼比
//
// 换算：stiffness = (tension-30)*3.62 + 194，damping = (friction-8)*3 + 25，质量为 1
// friction=8 时阻尼比约 0.82（几乎无回弹），friction=4 时约 0.43（轻微回弹）
func springParams(tension, friction float64) (angularFrequency, dampingRatio float64) {
	stiffness := (tension-30)*3.62 + 194
	damping := (friction-8)*3 + 25
	angularFrequency = math.Sqrt(stiffness)
	dampingRatio = damping / (2 * angularFrequency)
	return angularFrequency, dampingRatio
}

// Animator 动画驱动器
//
// 三个运动程序（入场、回弹、飞出）互斥运行，启动新程序会取代正在运行的程序。
// 由前端按固定帧率调用 Tick 推进。
type Animator struct {
	position *ValueXY
	progress *Value

	state     AnimState
	frameMs   float64
	entrance  harmonica.Spring
	returning harmonica.Spring

	// 弹簧速度（单位/秒）
	progressVel float64
	velX, velY  float64

	// 飞出程序
	exitFromX, exitFromY float64
	exitToX, exitToY     float64
	exitElapsedMs        float64
	exitEasing           Easing
	onExitDone           func()
}

// NewAnimator 创建动画驱动器
// fps <= 0 时使用 60
func NewAnimator(position *ValueXY, progress *Value, fps int) *Animator {
	if fps <= 0 {
		fps = 60
	}
	dt := harmonica.FPS(fps)
	ef, ed := springParams(springTension, entranceFriction)
	rf, rd := springParams(springTension, returnFriction)
	return &Animator{
		position:   position,
		progress:   progress,
		frameMs:    1000.0 / float64(fps),
		entrance:   harmonica.NewSpring(dt, ef, ed),
		returning:  harmonica.NewSpring(dt, rf, rd),
		exitEasing: EaseLinear,
	}
}

// SetExitEasing 设置飞出动画的时间曲线，nil 恢复线性
func (a *Animator) SetExitEasing(e Easing) {
	if e == nil {
		e = EaseLinear
	}
	a.exitEasing = e
}

// State 当前状态
func (a *Animator) State() AnimState {
	return a.state
}

// Busy 是否正在播放不可打断的程序（飞出）
func (a *Animator) Busy() bool {
	return a.state == AnimExiting
}

// BeginDrag 进入拖拽状态
//
// 飞出中拒绝（卡片已提交）；回弹中直接取代回弹；
// 入场中把入场进度直接定格到 1。
func (a *Animator) BeginDrag() bool {
	switch a.state {
	case AnimExiting:
		return false
	case AnimEntering:
		a.progress.Set(1)
		a.progressVel = 0
	case AnimReturning:
		a.velX, a.velY = 0, 0
	}
	a.state = AnimDragging
	return true
}

// PlayEntrance 入场进度从当前值弹向 1
func (a *Animator) PlayEntrance() {
	a.state = AnimEntering
	a.progressVel = 0
}

// PlayReturn 偏移从当前值弹回 (0, 0)
func (a *Animator) PlayReturn() {
	a.state = AnimReturning
	a.velX, a.velY = 0, 0
}

// PlayExit 偏移在 ExitDurationMs 内匀速移动到 (toX, toY)，结束后调用 onDone
func (a *Animator) PlayExit(toX, toY float64, onDone func()) {
	p := a.position.Get()
	a.exitFromX, a.exitFromY = p.X, p.Y
	a.exitToX, a.exitToY = toX, toY
	a.exitElapsedMs = 0
	a.onExitDone = onDone
	a.state = AnimExiting
}

// Stop 立即停止当前程序，保持当前值
func (a *Animator) Stop() {
	a.state = AnimIdle
	a.onExitDone = nil
	a.velX, a.velY, a.progressVel = 0, 0, 0
}

// Tick 推进一帧
func (a *Animator) Tick() {
	switch a.state {
	case AnimEntering:
		a.tickEntrance()
	case AnimReturning:
		a.tickReturn()
	case AnimExiting:
		a.tickExit()
	}
}

func (a *Animator) tickEntrance() {
	p, v := a.entrance.Update(a.progress.Get(), a.progressVel, 1)
	a.progressVel = v
	if math.Abs(1-p) <= progressRestDisplacement && math.Abs(v) <= progressRestSpeed {
		a.progress.Set(1)
		a.progressVel = 0
		a.state = AnimIdle
		return
	}
	a.progress.Set(p)
}

func (a *Animator) tickReturn() {
	cur := a.position.Get()
	x, vx := a.returning.Update(cur.X, a.velX, 0)
	y, vy := a.returning.Update(cur.Y, a.velY, 0)
	a.velX, a.velY = vx, vy

	atRest := math.Abs(x) <= positionRestDisplacement && math.Abs(y) <= positionRestDisplacement &&
		math.Abs(vx) <= positionRestSpeed && math.Abs(vy) <= positionRestSpeed
	if atRest {
		a.position.Reset()
		a.velX, a.velY = 0, 0
		a.state = AnimIdle
		return
	}
	a.position.Set(x, y)
}

func (a *Animator) tickExit() {
	a.exitElapsedMs += a.frameMs
	t := math.Min(a.exitElapsedMs/ExitDurationMs, 1)
	e := a.exitEasing(t)
	a.position.Set(Lerp(a.exitFromX, a.exitToX, e), Lerp(a.exitFromY, a.exitToY, e))
	if t < 1 {
		return
	}

	done := a.onExitDone
	a.onExitDone = nil
	a.state = AnimIdle
	if done != nil {
		done()
	}
}
