package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// CSS 过渡（ease）在这里用三次方缓出近似。
// 参考：https://easings.net/

// Clamp01 将值截断到 [0, 1]
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Progress 计算延迟 delay 后持续 duration 的过渡进度 ∈ [0, 1]
// duration <= 0 时延迟结束即完成
func Progress(elapsed, delay, duration float64) float64 {
	if elapsed < delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return Clamp01((elapsed - delay) / duration)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（滚动显现、菜单展开）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
