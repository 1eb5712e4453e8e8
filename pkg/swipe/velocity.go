package swipe

// velocityWindowMs 只用最近这段时间内的采样估计速度
const velocityWindowMs = 100.0

// maxVelocitySamples 环形缓冲的容量
const maxVelocitySamples = 20

type velocitySample struct {
	x, y float64
	t    float64 // 毫秒
}

// VelocityTracker 拖拽速度估计器
//
// 每帧记录一次指针位置和时间戳（毫秒），释放时用最近 100ms 窗口内
// 首尾两个采样计算平均速度，单位 像素/毫秒。
type VelocityTracker struct {
	samples []velocitySample
}

// NewVelocityTracker 创建速度估计器
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{samples: make([]velocitySample, 0, maxVelocitySamples)}
}

// Reset 清空采样（新拖拽开始时调用）
func (vt *VelocityTracker) Reset() {
	vt.samples = vt.samples[:0]
}

// AddSample 记录一个位置采样，时间戳必须单调不减
func (vt *VelocityTracker) AddSample(x, y, timeMs float64) {
	if len(vt.samples) == maxVelocitySamples {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:maxVelocitySamples-1]
	}
	vt.samples = append(vt.samples, velocitySample{x: x, y: y, t: timeMs})
}

// Velocity 估计当前速度（像素/毫秒）
// 采样不足两个或时间跨度为 0 时返回 (0, 0)
func (vt *VelocityTracker) Velocity() (vx, vy float64) {
	n := len(vt.samples)
	if n < 2 {
		return 0, 0
	}
	last := vt.samples[n-1]
	first := last
	for i := n - 2; i >= 0; i-- {
		if last.t-vt.samples[i].t > velocityWindowMs {
			break
		}
		first = vt.samples[i]
	}
	dt := last.t - first.t
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}
