package swipe

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Reader 标量动画值的只读能力
type Reader interface {
	Get() float64
	Subscribe(fn func(float64)) (unsubscribe func())
}

// XYReader 二维动画值的只读能力
type XYReader interface {
	Get() dmath.Vec2
	Subscribe(fn func(dmath.Vec2)) (unsubscribe func())
}

// Value 标量动画值（如入场进度）
//
// 写入会同步通知所有订阅者；订阅者不应在回调中再次写入同一个值。
type Value struct {
	v         float64
	listeners map[int]func(float64)
	nextID    int
}

// NewValue 创建初始值为 v 的标量动画值
func NewValue(v float64) *Value {
	return &Value{v: v, listeners: make(map[int]func(float64))}
}

// Get 返回当前值
func (m *Value) Get() float64 {
	return m.v
}

// Set 写入新值并通知订阅者（值未变化时不通知）
func (m *Value) Set(v float64) {
	if m.v == v {
		return
	}
	m.v = v
	for _, fn := range m.listeners {
		fn(v)
	}
}

// Subscribe 注册变化回调，返回取消订阅函数
func (m *Value) Subscribe(fn func(float64)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// ValueXY 二维动画值（卡片偏移 Position）
//
// 支持偏移基线：拖拽开始时把当前值存为 offset 并把 value 归零，
// 之后写入的是相对基线的增量；Get 返回 offset + value。
// FlattenOffset 把基线合并回 value 并清空。
type ValueXY struct {
	value     dmath.Vec2
	offset    dmath.Vec2
	listeners map[int]func(dmath.Vec2)
	nextID    int
}

// NewValueXY 创建初始位置为 (x, y) 的二维动画值
func NewValueXY(x, y float64) *ValueXY {
	return &ValueXY{
		value:     dmath.Vec2{X: x, Y: y},
		listeners: make(map[int]func(dmath.Vec2)),
	}
}

// Get 返回有效位置（基线 + 当前值）
func (m *ValueXY) Get() dmath.Vec2 {
	return dmath.Vec2{X: m.offset.X + m.value.X, Y: m.offset.Y + m.value.Y}
}

// X 有效位置的 X 分量
func (m *ValueXY) X() float64 {
	return m.offset.X + m.value.X
}

// Y 有效位置的 Y 分量
func (m *ValueXY) Y() float64 {
	return m.offset.Y + m.value.Y
}

// Set 写入相对基线的值
func (m *ValueXY) Set(x, y float64) {
	if m.value.X == x && m.value.Y == y {
		return
	}
	m.value = dmath.Vec2{X: x, Y: y}
	m.notify()
}

// SetOffset 设置偏移基线
func (m *ValueXY) SetOffset(x, y float64) {
	if m.offset.X == x && m.offset.Y == y {
		return
	}
	m.offset = dmath.Vec2{X: x, Y: y}
	m.notify()
}

// FlattenOffset 把基线合并到值中并清空基线，有效位置不变
func (m *ValueXY) FlattenOffset() {
	m.value = m.Get()
	m.offset = dmath.Vec2{}
}

// HasOffset 是否存在未合并的基线
func (m *ValueXY) HasOffset() bool {
	return m.offset.X != 0 || m.offset.Y != 0
}

// Reset 清空基线并把位置设为 (0, 0)
func (m *ValueXY) Reset() {
	if !m.HasOffset() && m.value.X == 0 && m.value.Y == 0 {
		return
	}
	m.offset = dmath.Vec2{}
	m.value = dmath.Vec2{}
	m.notify()
}

// Subscribe 注册位置变化回调，返回取消订阅函数
func (m *ValueXY) Subscribe(fn func(dmath.Vec2)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

func (m *ValueXY) notify() {
	p := m.Get()
	for _, fn := range m.listeners {
		fn(p)
	}
}
