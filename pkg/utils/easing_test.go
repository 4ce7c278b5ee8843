package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证"开始快，结束慢"的特性
	t.Run("开始快于线性", func(t *testing.T) {
		// 在前半段（p < 0.5），缓出函数应该比线性快
		for p := 0.1; p < 0.5; p += 0.1 {
			if eased := EaseOutCubic(p); eased <= p {
				t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值 %v（开始快）", p, eased, p)
			}
		}
	})

	t.Run("整体快于线性", func(t *testing.T) {
		// EaseOut 的"结束慢"指的是速度减缓，而非位置落后
		// 由于前半段加速，整个过程中位置都会领先或等于线性
		for p := 0.0; p <= 1.0; p += 0.1 {
			// 允许微小的浮点误差
			if eased := EaseOutCubic(p); eased < p-0.001 {
				t.Errorf("EaseOutCubic(%v) = %v 不应该落后于线性值 %v", p, eased, p)
			}
		}
	})
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"四分之一", 0.0, 100.0, 0.25, 25.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试截断
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestProgress 测试带延迟的过渡进度（页面淡入：延迟 0.1 秒，时长 0.5 秒）
func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		expected float64
	}{
		{"延迟中", 0.05, 0},
		{"刚开始", 0.1, 0},
		{"一半", 0.35, 0.5},
		{"完成", 0.6, 1},
		{"超时", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, 0.1, 0.5); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("Progress(%v) = %v, 期望 %v", tt.elapsed, got, tt.expected)
			}
		})
	}

	if got := Progress(1, 1, 0); got != 1 {
		t.Errorf("零时长过渡应立即完成, 实际 %v", got)
	}
}

// TestRevealOffset 测试滚动显现位移（从 30px 回到 0）
func TestRevealOffset(t *testing.T) {
	tests := []struct {
		progress       float64
		expectedOffset float64
	}{
		{0.0, 30},
		{1.0, 0},
		{0.5, 3.75}, // 30 * (1 - 0.875)
	}

	for _, tt := range tests {
		offset := Lerp(30, 0, EaseOutCubic(tt.progress))
		if math.Abs(offset-tt.expectedOffset) > 0.001 {
			t.Errorf("进度 %v 时，位移应该是 %v，实际: %v", tt.progress, tt.expectedOffset, offset)
		}
		if offset < 0 || offset > 30 {
			t.Errorf("位移 %v 超出范围 [0, 30]", offset)
		}
	}
}
