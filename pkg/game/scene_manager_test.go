package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的场景
type mockScene struct {
	updates   int
	draws     int
	deltaTime float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.draws++
}

// mockSaveableScene 可保存的场景
type mockSaveableScene struct {
	mockScene
	saves  int
	result bool
}

func (m *mockSaveableScene) SaveOnExit() bool {
	m.saves++
	return m.result
}

func TestSceneManagerDispatch(t *testing.T) {
	sm := NewSceneManager()

	// 没有活动场景时不 panic
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(8, 8))

	scene := &mockScene{}
	sm.SwitchTo(scene)
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(8, 8))

	if scene.updates != 1 || scene.draws != 1 {
		t.Errorf("updates=%d draws=%d, want 1/1", scene.updates, scene.draws)
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("deltaTime = %v, want 0.016", scene.deltaTime)
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene should return the active scene")
	}
}

func TestSceneManagerSaveOnSwitch(t *testing.T) {
	tests := []struct {
		name       string
		saveResult bool
		wantOK     bool
	}{
		{"保存成功", true, true},
		{"保存失败", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			first := &mockSaveableScene{result: tt.saveResult}
			sm.SwitchTo(first)

			if got := sm.SaveCurrentScene(); got != tt.wantOK {
				t.Errorf("SaveCurrentScene() = %v, want %v", got, tt.wantOK)
			}

			// 切换到同一场景不触发保存
			sm.SwitchTo(first)
			if first.saves != 1 {
				t.Errorf("saves = %d, want 1", first.saves)
			}

			sm.SwitchTo(&mockScene{})
			if first.saves != 2 {
				t.Errorf("saves after switching away = %d, want 2", first.saves)
			}
		})
	}
}

func TestSceneManagerSaveNonSaveable(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveCurrentScene() {
		t.Error("no scene should count as saved")
	}
	sm.SwitchTo(&mockScene{})
	if !sm.SaveCurrentScene() {
		t.Error("non-saveable scene should count as saved")
	}
}
