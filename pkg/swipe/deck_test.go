package swipe

import (
	"reflect"
	"testing"
)

func TestDeckAdvanceWithoutLoop(t *testing.T) {
	d := NewDeck([]string{"A", "B", "C"}, false)

	for want := 1; want < 3; want++ {
		if !d.Advance() {
			t.Fatalf("Advance should succeed at index %d", want-1)
		}
		if d.Index() != want {
			t.Errorf("Expected index %d, got %d", want, d.Index())
		}
	}

	d.Advance()
	if !d.IsExhausted() {
		t.Errorf("Expected exhausted after last card, got index %d", d.Index())
	}
	if _, ok := d.Current(); ok {
		t.Error("Exhausted deck should have no current card")
	}
	if d.Advance() {
		t.Error("Advance on exhausted deck should be a no-op")
	}
	if d.Index() != Exhausted {
		t.Errorf("Expected index -1, got %d", d.Index())
	}
}

func TestDeckAdvanceWithLoop(t *testing.T) {
	d := NewDeck([]string{"A", "B"}, true)
	d.Advance()
	d.Advance()
	if d.Index() != 0 {
		t.Errorf("Expected loop back to 0, got %d", d.Index())
	}
}

func TestDeckEmpty(t *testing.T) {
	d := NewDeck[string](nil, true)
	if !d.IsExhausted() {
		t.Error("Empty deck should start exhausted")
	}
	if got := d.StackIndices(3); got != nil {
		t.Errorf("Empty deck should produce no stack, got %v", got)
	}
}

func TestDeckReplace(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		loop      bool
		exhaust   bool
		cards     []string
		policy    ResetPolicy
		wantIndex int
	}{
		{"重置到开头", 2, false, false, []string{"X", "Y", "Z"}, ResetToStart, 0},
		{"保留合法索引", 1, false, false, []string{"X", "Y", "Z"}, KeepIndex, 1},
		{"保留越界索引且不循环", 2, false, false, []string{"X"}, KeepIndex, Exhausted},
		{"保留越界索引且循环", 2, true, false, []string{"X"}, KeepIndex, 0},
		{"耗尽后替换", 0, false, true, []string{"X", "Y"}, KeepIndex, 0},
		{"替换为空序列", 1, false, false, nil, ResetToStart, Exhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeck([]string{"A", "B", "C"}, tt.loop)
			for i := 0; i < tt.start; i++ {
				d.Advance()
			}
			if tt.exhaust {
				d.Replace(nil, ResetToStart)
			}

			d.Replace(tt.cards, tt.policy)
			if d.Index() != tt.wantIndex {
				t.Errorf("Replace index = %d, want %d", d.Index(), tt.wantIndex)
			}
		})
	}
}

func TestDeckStackIndices(t *testing.T) {
	tests := []struct {
		name     string
		cards    int
		loop     bool
		advance  int
		depth    int
		expected []int
	}{
		{"深度为二", 3, false, 0, 2, []int{1, 0}},
		{"深度为三", 5, false, 1, 3, []int{3, 2, 1}},
		{"末尾不足深度", 3, false, 2, 3, []int{2}},
		{"循环模式绕回开头", 3, true, 2, 3, []int{1, 0, 2}},
		{"循环模式不超过总数", 2, true, 0, 4, []int{1, 0}},
		{"深度为零", 3, false, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := make([]int, tt.cards)
			d := NewDeck(cards, tt.loop)
			for i := 0; i < tt.advance; i++ {
				d.Advance()
			}
			got := d.StackIndices(tt.depth)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("StackIndices(%d) = %v, want %v", tt.depth, got, tt.expected)
			}
		})
	}
}
