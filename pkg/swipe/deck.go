package swipe

// ResetPolicy 替换卡片序列时的索引策略
type ResetPolicy int

const (
	// ResetToStart 新序列非空时回到第一张
	ResetToStart ResetPolicy = iota
	// KeepIndex 尽量保留当前索引（越界时按循环 / 耗尽规则处理）
	KeepIndex
)

// Exhausted 卡片耗尽时的索引值
const Exhausted = -1

// Deck 卡片序列状态机
//
// 状态：Active(i)（0 <= i < Len）或 Exhausted（index == -1）。
// 不变式：index 要么是合法下标，要么恰好为 -1。
type Deck[C any] struct {
	cards []C
	index int
	loop  bool
}

// NewDeck 创建卡片序列，空序列直接处于耗尽状态
func NewDeck[C any](cards []C, loop bool) *Deck[C] {
	d := &Deck[C]{cards: cards, loop: loop, index: Exhausted}
	if len(cards) > 0 {
		d.index = 0
	}
	return d
}

// Len 卡片数量
func (d *Deck[C]) Len() int {
	return len(d.cards)
}

// Index 当前索引，耗尽时为 -1
func (d *Deck[C]) Index() int {
	return d.index
}

// Loop 是否循环
func (d *Deck[C]) Loop() bool {
	return d.loop
}

// SetLoop 修改循环标志，不影响当前索引
func (d *Deck[C]) SetLoop(loop bool) {
	d.loop = loop
}

// IsExhausted 是否已耗尽
func (d *Deck[C]) IsExhausted() bool {
	return d.index == Exhausted
}

// Current 当前活动卡片
func (d *Deck[C]) Current() (C, bool) {
	var zero C
	if d.index == Exhausted {
		return zero, false
	}
	return d.cards[d.index], true
}

// At 返回指定下标的卡片
func (d *Deck[C]) At(i int) (C, bool) {
	var zero C
	if i < 0 || i >= len(d.cards) {
		return zero, false
	}
	return d.cards[i], true
}

// Cards 返回底层序列（调用方不应修改）
func (d *Deck[C]) Cards() []C {
	return d.cards
}

// Advance 提交后前进到下一张
//
//	Active(i) -> Active(i+1)  当 i+1 < Len
//	Active(i) -> Active(0)    当越界且循环
//	Active(i) -> Exhausted    当越界且不循环
//
// 耗尽状态下调用无效果，返回 false。
func (d *Deck[C]) Advance() bool {
	if d.index == Exhausted {
		return false
	}
	next := d.index + 1
	if next >= len(d.cards) {
		if d.loop {
			next = 0
		} else {
			next = Exhausted
		}
	}
	d.index = next
	return true
}

// Replace 用新序列替换卡片
//
// 空序列进入耗尽状态；非空时按 policy 决定索引，
// 耗尽状态下替换为非空序列总是回到 Active(0)。
func (d *Deck[C]) Replace(cards []C, policy ResetPolicy) {
	prev := d.index
	d.cards = cards

	if len(cards) == 0 {
		d.index = Exhausted
		return
	}

	if policy == ResetToStart || prev == Exhausted {
		d.index = 0
		return
	}

	switch {
	case prev < len(cards):
		d.index = prev
	case d.loop:
		d.index = 0
	default:
		d.index = Exhausted
	}
}

// StackIndices 返回需要绘制的卡片下标，最深的在前，活动卡片在最后
//
// 数量为 min(depth, Len-index)；循环模式下排队位置会绕回序列开头（不超过 Len）。
// 耗尽状态返回 nil。
func (d *Deck[C]) StackIndices(depth int) []int {
	if d.index == Exhausted || depth <= 0 {
		return nil
	}

	count := depth
	if d.loop {
		count = min(count, len(d.cards))
	} else {
		count = min(count, len(d.cards)-d.index)
	}

	indices := make([]int, count)
	for level := 0; level < count; level++ {
		indices[count-1-level] = (d.index + level) % len(d.cards)
	}
	return indices
}
