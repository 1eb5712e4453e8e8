package swipe

import "math"

// Easing 时间曲线：输入进度 t ∈ [0, 1]，返回缓动后的进度
//
// 飞出动画默认使用 EaseLinear，保证固定时长内匀速离场。
type Easing func(t float64) float64

// EaseLinear 线性（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 二次方缓入，开始慢结束快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
