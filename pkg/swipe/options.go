package swipe

// Options 卡片堆配置
//
// 使用 DefaultOptions 获取默认值后再按需修改，
// 布尔字段的零值并不等于默认值（如 ShowYup 默认为 true）。
type Options[C any] struct {
	// Loop 最后一张之后回到第一张，否则进入耗尽状态
	Loop bool
	// OnlyHorizontal 忽略拖拽的垂直分量
	OnlyHorizontal bool

	// 堆叠显示
	Stack          bool    // 是否显示排队卡片
	StackDepth     int     // 同时绘制的卡片数（1 张活动 + N-1 张排队）
	StackOffsetX   float64 // 每层排队卡片的水平偏移
	StackOffsetY   float64 // 每层排队卡片的垂直偏移
	StackScaleStep float64 // 每层排队卡片的缩放递减量（0 表示不缩放）

	// DisableGestures 拒绝所有拖拽
	DisableGestures bool
	// FadeOnSwipe 拖拽时按水平偏移降低卡片透明度
	FadeOnSwipe bool

	// 接受 / 拒绝提示
	// 优先级：RenderYup > YupView > YupText
	ShowYup    bool
	ShowNope   bool
	YupText    string
	NopeText   string
	YupView    any
	NopeView   any
	RenderYup  func(position XYReader)
	RenderNope func(position XYReader)

	// 回调
	HandleYup     func(card C)    // 向右提交，每次提交恰好调用一次
	HandleNope    func(card C)    // 向左提交，每次提交恰好调用一次
	OnCardRemoved func(index int) // 提交后调用，参数为卡片在原始序列中的下标
	Logger        func(format string, args ...any)

	// FPS 动画驱动帧率，与前端更新频率一致
	FPS int
	// ExitEasing 飞出动画时间曲线，nil 为线性
	ExitEasing Easing
}

// DefaultOptions 返回默认配置
func DefaultOptions[C any]() Options[C] {
	return Options[C]{
		Loop:            false,
		OnlyHorizontal:  false,
		Stack:           true,
		StackDepth:      2,
		DisableGestures: false,
		FadeOnSwipe:     false,
		ShowYup:         true,
		ShowNope:        true,
		YupText:         "Yup!",
		NopeText:        "Nope!",
		FPS:             60,
	}
}

// withFallbacks 补齐未设置的回调与非法数值
func (o Options[C]) withFallbacks() Options[C] {
	if o.HandleYup == nil {
		o.HandleYup = func(C) {}
	}
	if o.HandleNope == nil {
		o.HandleNope = func(C) {}
	}
	if o.OnCardRemoved == nil {
		o.OnCardRemoved = func(int) {}
	}
	if o.Logger == nil {
		o.Logger = func(string, ...any) {}
	}
	if o.StackDepth < 1 {
		o.StackDepth = 1
	}
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.ExitEasing == nil {
		o.ExitEasing = EaseLinear
	}
	return o
}
