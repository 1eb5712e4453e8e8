package swipe

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestValueSubscribe(t *testing.T) {
	v := NewValue(0.5)
	var got []float64
	unsubscribe := v.Subscribe(func(x float64) { got = append(got, x) })

	v.Set(0.7)
	v.Set(0.7) // 相同值不通知
	v.Set(1)
	unsubscribe()
	v.Set(0)

	if len(got) != 2 || got[0] != 0.7 || got[1] != 1 {
		t.Errorf("Expected notifications [0.7 1], got %v", got)
	}
	if v.Get() != 0 {
		t.Errorf("Expected value 0, got %v", v.Get())
	}
}

func TestValueXYOffsetAndFlatten(t *testing.T) {
	p := NewValueXY(30, -10)

	// 拖拽开始：当前位置成为基线
	p.SetOffset(30, -10)
	p.Set(0, 0)
	if got := p.Get(); got.X != 30 || got.Y != -10 {
		t.Errorf("Expected effective position (30, -10), got (%v, %v)", got.X, got.Y)
	}

	// 拖拽增量相对基线
	p.Set(50, 5)
	if p.X() != 80 || p.Y() != -5 {
		t.Errorf("Expected (80, -5), got (%v, %v)", p.X(), p.Y())
	}

	p.FlattenOffset()
	if p.HasOffset() {
		t.Error("Expected offset to be cleared after flatten")
	}
	if p.X() != 80 || p.Y() != -5 {
		t.Errorf("Flatten should keep effective position, got (%v, %v)", p.X(), p.Y())
	}
}

func TestValueXYSubscribeAndReset(t *testing.T) {
	p := NewValueXY(0, 0)
	var last dmath.Vec2
	calls := 0
	p.Subscribe(func(v dmath.Vec2) {
		last = v
		calls++
	})

	p.Set(12, 3)
	if calls != 1 || last.X != 12 || last.Y != 3 {
		t.Errorf("Expected one notification with (12, 3), got %d calls, last=(%v, %v)", calls, last.X, last.Y)
	}

	p.Reset()
	if calls != 2 || last.X != 0 || last.Y != 0 {
		t.Errorf("Expected reset notification with (0, 0), got %d calls, last=(%v, %v)", calls, last.X, last.Y)
	}

	p.Reset() // 已在原点，不再通知
	if calls != 2 {
		t.Errorf("Reset at rest should not notify, got %d calls", calls)
	}
}
