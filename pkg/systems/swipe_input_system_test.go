package systems

import (
	"testing"

	"github.com/decker502/swipedeck/pkg/swipe"
)

const frameDT = 1.0 / 60.0

// mockPointerInput 模拟指针输入
type mockPointerInput struct {
	pressed bool
	x, y    int
	focused bool
}

func (m *mockPointerInput) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

func (m *mockPointerInput) IsFocused() bool {
	return m.focused
}

type swipeResult struct {
	yups, nopes []string
	removed     []int
}

func newTestSwiper(t *testing.T, cards []string) (*swipe.Swiper[string], *swipeResult) {
	t.Helper()
	res := &swipeResult{}
	opts := swipe.DefaultOptions[string]()
	opts.HandleYup = func(c string) { res.yups = append(res.yups, c) }
	opts.HandleNope = func(c string) { res.nopes = append(res.nopes, c) }
	opts.OnCardRemoved = func(i int) { res.removed = append(res.removed, i) }
	return swipe.New(cards, opts), res
}

// hitCenter 只接受屏幕中心 100x100 区域内的按下
func hitCenter(x, y float64) bool {
	return x >= 190 && x <= 290 && y >= 280 && y <= 380
}

// drag 从 (240, 330) 出发，每帧移动 (stepX, stepY)，共 frames 帧后释放
func drag(sys *SwipeInputSystem, in *mockPointerInput, stepX, stepY, frames int) {
	in.pressed, in.x, in.y = true, 240, 330
	sys.Update(frameDT)
	for i := 0; i < frames; i++ {
		in.x += stepX
		in.y += stepY
		sys.Update(frameDT)
	}
	in.pressed = false
	sys.Update(frameDT)
}

func TestSwipeInputSystemCommit(t *testing.T) {
	tests := []struct {
		name      string
		stepX     int
		wantYups  int
		wantNopes int
	}{
		{"快速右滑提交接受", 20, 1, 0},
		{"快速左滑提交拒绝", -20, 0, 1},
		{"位移不足回到中心", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swiper, res := newTestSwiper(t, []string{"A", "B"})
			in := &mockPointerInput{focused: true}
			sys := NewSwipeInputSystemWithInput(swiper, hitCenter, in)

			var decisions []swipe.Decision
			sys.OnDecision(func(d swipe.Decision) { decisions = append(decisions, d) })

			drag(sys, in, tt.stepX, 0, 10)

			if len(res.yups) != tt.wantYups || len(res.nopes) != tt.wantNopes {
				t.Errorf("yups=%v nopes=%v, want %d/%d", res.yups, res.nopes, tt.wantYups, tt.wantNopes)
			}
			if len(decisions) != 1 {
				t.Fatalf("decisions = %d, want 1", len(decisions))
			}
			if tt.wantYups+tt.wantNopes == 1 && len(res.removed) != 1 {
				t.Errorf("OnCardRemoved calls = %v, want 1", res.removed)
			}
			if sys.InSession() {
				t.Error("session should end after release")
			}
		})
	}
}

func TestSwipeInputSystemVelocityUnits(t *testing.T) {
	swiper, _ := newTestSwiper(t, []string{"A"})
	in := &mockPointerInput{focused: true}
	sys := NewSwipeInputSystemWithInput(swiper, hitCenter, in)

	var got swipe.Decision
	sys.OnDecision(func(d swipe.Decision) { got = d })
	drag(sys, in, 20, 0, 10)

	// 每帧 20px，每帧约 16.67ms => 1.2 px/ms
	if got.VelocityX < 1.1 || got.VelocityX > 1.3 {
		t.Errorf("VelocityX = %v, want ~1.2 px/ms", got.VelocityX)
	}
}

func TestSwipeInputSystemHitTestMiss(t *testing.T) {
	swiper, res := newTestSwiper(t, []string{"A"})
	in := &mockPointerInput{focused: true}
	sys := NewSwipeInputSystemWithInput(swiper, hitCenter, in)

	in.pressed, in.x, in.y = true, 10, 10
	sys.Update(frameDT)
	for i := 0; i < 10; i++ {
		in.x += 30
		sys.Update(frameDT)
	}
	in.pressed = false
	sys.Update(frameDT)

	if sys.InSession() || swiper.Dragging() {
		t.Error("press outside the card should not start a drag")
	}
	if len(res.yups) != 0 {
		t.Errorf("unexpected commit: %v", res.yups)
	}
}

func TestSwipeInputSystemFocusLoss(t *testing.T) {
	swiper, res := newTestSwiper(t, []string{"A"})
	in := &mockPointerInput{focused: true}
	sys := NewSwipeInputSystemWithInput(swiper, hitCenter, in)

	in.pressed, in.x, in.y = true, 240, 330
	sys.Update(frameDT)
	for i := 0; i < 10; i++ {
		in.x += 20
		sys.Update(frameDT)
	}
	if !swiper.Dragging() {
		t.Fatal("drag should be granted")
	}

	in.focused = false
	sys.Update(frameDT)

	if swiper.Dragging() || sys.InSession() {
		t.Error("focus loss should terminate the drag")
	}
	if swiper.State() != swipe.AnimReturning {
		t.Errorf("State = %v, want Returning", swiper.State())
	}
	if len(res.yups) != 0 {
		t.Errorf("terminate must not commit, got %v", res.yups)
	}
}

func TestSwipeInputSystemDisabledGestures(t *testing.T) {
	swiper, _ := newTestSwiper(t, []string{"A"})
	swiper.SetDisableGestures(true)
	in := &mockPointerInput{focused: true}
	sys := NewSwipeInputSystemWithInput(swiper, hitCenter, in)

	in.pressed, in.x, in.y = true, 240, 330
	sys.Update(frameDT)
	if sys.InSession() {
		t.Error("no session should start while gestures are disabled")
	}
}
