package swipe

import "math"

// Extrapolate 定义输入超出定义域时的处理方式
type Extrapolate int

const (
	// ExtrapolateClamp 超出定义域时取端点值
	ExtrapolateClamp Extrapolate = iota
	// ExtrapolateExtend 超出定义域时沿端点线段继续线性外推
	ExtrapolateExtend
)

// Range 分段线性映射
// Input 必须单调递增，且与 Output 长度相同（至少 2 个点）
type Range struct {
	Input       []float64
	Output      []float64
	Extrapolate Extrapolate
}

// Map 计算 v 在该映射下的输出值
// 定义不完整的 Range 直接返回 v
func (r Range) Map(v float64) float64 {
	n := len(r.Input)
	if n < 2 || len(r.Output) != n {
		return v
	}

	if v <= r.Input[0] {
		if r.Extrapolate == ExtrapolateClamp {
			return r.Output[0]
		}
		return segment(v, r.Input[0], r.Input[1], r.Output[0], r.Output[1])
	}
	if v >= r.Input[n-1] {
		if r.Extrapolate == ExtrapolateClamp {
			return r.Output[n-1]
		}
		return segment(v, r.Input[n-2], r.Input[n-1], r.Output[n-2], r.Output[n-1])
	}

	for i := 1; i < n; i++ {
		if v <= r.Input[i] {
			return segment(v, r.Input[i-1], r.Input[i], r.Output[i-1], r.Output[i])
		}
	}
	return r.Output[n-1]
}

// segment 在线段 [inMin, inMax] -> [outMin, outMax] 上做线性插值
func segment(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := (v - inMin) / (inMax - inMin)
	return outMin + (outMax-outMin)*t
}

// Interpolate 便捷函数：使用 clamp 外推的分段线性映射
func Interpolate(v float64, input, output []float64) float64 {
	return Range{Input: input, Output: output}.Map(v)
}

// Clamp 把 value 限制在 [low, high] 区间内
func Clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(value, high))
}

// ClampMagnitude 保留符号地限制 |v| 在 [low, high] 区间内
// 用于飞出速度：sign(v) * clamp(|v|, low, high)
// v 为 0 时按正方向处理
func ClampMagnitude(v, low, high float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1.0
	}
	return sign * Clamp(math.Abs(v), low, high)
}

// 视觉映射常量
var (
	// rotationRange 水平偏移 -> 旋转角度（度）
	rotationRange = Range{
		Input:  []float64{-200, 0, 200},
		Output: []float64{-30, 0, 30},
	}

	// fadeRange 水平偏移 -> 卡片透明度（FadeOnSwipe 模式）
	fadeRange = Range{
		Input:  []float64{-200, 0, 200},
		Output: []float64{0.5, 1, 0.5},
	}

	// nopeOpacityRange / nopeScaleRange 拒绝提示：向左拖动时出现
	nopeOpacityRange = Range{Input: []float64{-150, 0}, Output: []float64{1, 0}}
	nopeScaleRange   = Range{Input: []float64{-150, 0}, Output: []float64{1, 0.5}}

	// yupOpacityRange / yupScaleRange 接受提示：向右拖动时出现
	yupOpacityRange = Range{Input: []float64{0, 150}, Output: []float64{0, 1}}
	yupScaleRange   = Range{Input: []float64{0, 150}, Output: []float64{0.5, 1}}
)

// Rotation 水平偏移对应的卡片旋转角度（度），限制在 ±30°
func Rotation(x float64) float64 {
	return rotationRange.Map(x)
}

// FadeOpacity 水平偏移对应的卡片透明度，范围 [0.5, 1]
func FadeOpacity(x float64) float64 {
	return fadeRange.Map(x)
}

// EntranceScale 入场进度对应的卡片缩放
//
// 堆叠模式下从 previousScale 过渡到 1，
// 让被提升的卡片沿用它在堆叠中的缩放作为起点，避免跳变；
// 非堆叠模式下缩放直接等于入场进度。
func EntranceScale(progress float64, stacked bool, previousScale float64) float64 {
	if !stacked {
		return progress
	}
	return segment(progress, 0, 1, previousScale, 1)
}

// NopeStyle 拒绝提示的透明度和缩放
func NopeStyle(x float64) (opacity, scale float64) {
	return nopeOpacityRange.Map(x), nopeScaleRange.Map(x)
}

// YupStyle 接受提示的透明度和缩放
func YupStyle(x float64) (opacity, scale float64) {
	return yupOpacityRange.Map(x), yupScaleRange.Map(x)
}

// StackOffset 第 level 层排队卡片（1 = 紧贴活动卡片下方）在入场进度 progress 时的偏移
// progress=0 时位于 (level+1)*step，progress=1 时下移到 level*step
func StackOffset(level int, step, progress float64) float64 {
	from := float64(level+1) * step
	to := float64(level) * step
	return segment(progress, 0, 1, from, to)
}
