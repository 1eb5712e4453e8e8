package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/deck.yaml":         {Data: []byte("loop: true\n")},
		"data/cards/demo.yaml":   {Data: []byte("name: demo\n")},
		"data/cards/extra.yaml":  {Data: []byte("name: extra\n")},
		"assets/ignored/me.yaml": {Data: []byte("x")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	Reset()

	if _, err := Open("data/deck.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open before Init: got %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/deck.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile before Init: got %v, want ErrNotInitialized", err)
	}
	if Exists("data/deck.yaml") {
		t.Error("Exists before Init should be false")
	}
}

// TestReadFile 测试读取与路径标准化
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Reset()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/deck.yaml", "loop: true\n", false},
		{"带 ./ 前缀", "./data/deck.yaml", "loop: true\n", false},
		{"未知前缀", "assets/ignored/me.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestGlob 测试文件匹配
func TestGlob(t *testing.T) {
	Init(testFS())
	defer Reset()

	matches, err := Glob("data/cards/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob matched %v, want 2 files", matches)
	}
	if !Exists("data/cards/demo.yaml") {
		t.Error("Expected data/cards/demo.yaml to exist")
	}
}
