package swipe

import "testing"

func TestVelocityTracker(t *testing.T) {
	tests := []struct {
		name    string
		samples [][3]float64 // x, y, t
		wantVX  float64
		wantVY  float64
	}{
		{
			name:    "无采样速度为零",
			samples: nil,
		},
		{
			name:    "单个采样速度为零",
			samples: [][3]float64{{10, 10, 0}},
		},
		{
			name:    "匀速向右",
			samples: [][3]float64{{0, 0, 0}, {16, 0, 16}, {32, 0, 32}, {48, 0, 48}},
			wantVX:  1,
		},
		{
			name:    "只取最近100ms窗口",
			samples: [][3]float64{{0, 0, 0}, {0, 0, 500}, {200, -100, 600}},
			wantVX:  2,
			wantVY:  -1,
		},
		{
			name:    "时间跨度为零",
			samples: [][3]float64{{0, 0, 10}, {50, 50, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vt := NewVelocityTracker()
			for _, s := range tt.samples {
				vt.AddSample(s[0], s[1], s[2])
			}
			vx, vy := vt.Velocity()
			if !almostEqual(vx, tt.wantVX) || !almostEqual(vy, tt.wantVY) {
				t.Errorf("Velocity() = (%v, %v), want (%v, %v)", vx, vy, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestVelocityTrackerCapacity(t *testing.T) {
	vt := NewVelocityTracker()
	for i := 0; i < maxVelocitySamples*3; i++ {
		vt.AddSample(float64(i)*2, 0, float64(i))
	}
	if len(vt.samples) != maxVelocitySamples {
		t.Fatalf("len(samples) = %d, want %d", len(vt.samples), maxVelocitySamples)
	}
	if vx, _ := vt.Velocity(); !almostEqual(vx, 2) {
		t.Errorf("vx = %v, want 2", vx)
	}

	vt.Reset()
	if vx, vy := vt.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("after Reset velocity = (%v, %v), want 0", vx, vy)
	}
}
