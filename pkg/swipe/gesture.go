package swipe

import "math"

const (
	// SwipeThreshold 释放时水平位移超过该值才可能提交（单位：逻辑像素）
	SwipeThreshold = 120.0

	// GestureStartThreshold 拖拽起始判定阈值，过滤误触
	GestureStartThreshold = 5.0

	// 飞出速度幅值范围（单位：像素/毫秒）
	minFlingSpeed = 3.0
	maxFlingSpeed = 5.0
)

// Outcome 手势释放后的判定结果
type Outcome int

const (
	// OutcomeReturn 回到中心，不触发回调
	OutcomeReturn Outcome = iota
	// OutcomeYup 向右提交（接受）
	OutcomeYup
	// OutcomeNope 向左提交（拒绝）
	OutcomeNope
)

// String 返回判定结果名称（用于日志）
func (o Outcome) String() string {
	switch o {
	case OutcomeYup:
		return "yup"
	case OutcomeNope:
		return "nope"
	default:
		return "return"
	}
}

// IsCommit 是否为提交（接受或拒绝）
func (o Outcome) IsCommit() bool {
	return o == OutcomeYup || o == OutcomeNope
}

// Decision 释放判定
type Decision struct {
	Outcome Outcome
	// Regret 速度方向与位移方向相反（用户拖出后又甩回中心）
	Regret bool
	// X 释放时的水平位移
	X float64
	// VelocityX / VelocityY 释放时的原始速度
	VelocityX float64
	VelocityY float64
}

// FlingTarget 飞出动画的终点
// X 方向速度先做保号限幅，保证过阈值的慢速滑动也能飞出屏幕
// 释放时速度为 0（拖过阈值后停住再松手）按位移方向飞出
func (d Decision) FlingTarget(durationMs float64) (x, y float64) {
	vx := d.VelocityX
	if vx == 0 {
		vx = math.Copysign(minFlingSpeed, d.X)
	}
	vx = ClampMagnitude(vx, minFlingSpeed, maxFlingSpeed)
	return vx * durationMs, d.VelocityY * durationMs
}

// GestureTracker 单次拖拽会话的手势跟踪器
//
// 生命周期：ShouldStart -> Grant -> Move... -> Release / Terminate
type GestureTracker struct {
	position       *ValueXY
	onlyHorizontal bool
	disabled       bool
	tracking       bool
}

// NewGestureTracker 创建手势跟踪器，position 为可写的卡片偏移
func NewGestureTracker(position *ValueXY, onlyHorizontal bool) *GestureTracker {
	return &GestureTracker{
		position:       position,
		onlyHorizontal: onlyHorizontal,
	}
}

// SetDisabled 禁用 / 启用拖拽
func (g *GestureTracker) SetDisabled(disabled bool) {
	g.disabled = disabled
}

// Disabled 是否禁用拖拽
func (g *GestureTracker) Disabled() bool {
	return g.disabled
}

// Tracking 是否处于拖拽会话中
func (g *GestureTracker) Tracking() bool {
	return g.tracking
}

// ShouldStart 判断一次移动是否应当开启拖拽会话
// 主轴位移超过 GestureStartThreshold 才认领，仅水平模式下只看 dx
func (g *GestureTracker) ShouldStart(dx, dy float64) bool {
	if g.disabled {
		return false
	}
	dominant := math.Abs(dx)
	if !g.onlyHorizontal {
		dominant = math.Max(dominant, math.Abs(dy))
	}
	return dominant > GestureStartThreshold
}

// Grant 开始拖拽：把当前位置存为基线，后续移动相对基线
func (g *GestureTracker) Grant() {
	p := g.position.Get()
	g.position.SetOffset(p.X, p.Y)
	g.position.Set(0, 0)
	g.tracking = true
}

// Move 写入自拖拽开始以来的累计位移
func (g *GestureTracker) Move(dx, dy float64) {
	if !g.tracking {
		return
	}
	if g.onlyHorizontal {
		dy = 0
	}
	g.position.Set(dx, dy)
}

// Release 结束拖拽并判定结果
// 速度单位：像素/毫秒
func (g *GestureTracker) Release(vx, vy float64) Decision {
	g.position.FlattenOffset()
	g.tracking = false
	return Classify(g.position.X(), vx, vy)
}

// Terminate 拖拽被外部打断（如其他响应者接管），总是回到中心
func (g *GestureTracker) Terminate() Decision {
	g.position.FlattenOffset()
	g.tracking = false
	return Decision{Outcome: OutcomeReturn, X: g.position.X()}
}

// Classify 根据释放位移和速度判定结果
func Classify(x, vx, vy float64) Decision {
	d := Decision{
		X:         x,
		VelocityX: vx,
		VelocityY: vy,
		Regret:    vx*x < 0,
	}
	if math.Abs(x) > SwipeThreshold && !d.Regret {
		if x > 0 {
			d.Outcome = OutcomeYup
		} else {
			d.Outcome = OutcomeNope
		}
	}
	return d
}
