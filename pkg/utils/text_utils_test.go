package utils

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxCols int
		want    []string
	}{
		{"空文本", "", 10, []string{""}},
		{"不需要换行", "swipe right", 20, []string{"swipe right"}},
		{"在空格处断行", "swipe right to accept", 12, []string{"swipe right", "to accept"}},
		{"超长单词强制断行", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"保留原有换行", "one\ntwo three", 20, []string{"one", "two three"}},
		{"最大列数非法时原样返回", "hello", 0, []string{"hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.maxCols)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tt.text, tt.maxCols, got, tt.want)
			}
		})
	}
}

func TestMeasureDebugText(t *testing.T) {
	if got := MeasureDebugText("ab\nabcd"); got != 4*DebugCharWidth {
		t.Errorf("MeasureDebugText = %v, want %v", got, 4*DebugCharWidth)
	}
}
