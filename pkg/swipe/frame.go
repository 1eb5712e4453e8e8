package swipe

// StackFrame 单张卡片在当前帧的视觉参数
type StackFrame struct {
	// Index 卡片在序列中的下标
	Index int
	// Level 堆叠层级，0 为活动卡片，1 为紧贴其下的排队卡片
	Level int

	// Left / Top 排队卡片的堆叠偏移
	Left float64
	Top  float64

	// TranslateX / TranslateY 活动卡片的拖拽偏移
	TranslateX float64
	TranslateY float64

	Rotation  float64 // 旋转角度（度）
	Scale     float64
	Opacity   float64
	Elevation int // 越大越靠上
}

// IsActive 是否为活动卡片
func (f StackFrame) IsActive() bool {
	return f.Level == 0
}

// AffordanceKind 提示类型
type AffordanceKind int

const (
	// AffordanceNope 拒绝提示
	AffordanceNope AffordanceKind = iota
	// AffordanceYup 接受提示
	AffordanceYup
)

// Affordance 接受 / 拒绝提示在当前帧的视觉参数
// View 非空时应优先绘制 View，否则绘制 Text
type Affordance struct {
	Kind    AffordanceKind
	Text    string
	View    any
	Opacity float64
	Scale   float64
}

// Composer 卡片视图合成器，由前端实现
type Composer[C any] interface {
	// DrawCard 绘制一张卡片，调用顺序由深到浅
	DrawCard(card C, frame StackFrame)
	// DrawNoMoreCards 卡片耗尽时调用
	DrawNoMoreCards()
	// DrawAffordance 绘制接受 / 拒绝提示
	DrawAffordance(a Affordance)
}
