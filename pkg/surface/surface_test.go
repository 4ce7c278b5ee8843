package surface

import (
	"image/color"
	"testing"
)

// 编译期检查接口实现
var (
	_ Surface = (*ImageSurface)(nil)
	_ Surface = (*Recorder)(nil)
)

// TestWithAlpha 测试透明度缩放与截断
func TestWithAlpha(t *testing.T) {
	base := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0, 0},
		{0.5, 128},
		{-0.3, 0},
		{1.7, 255},
	}
	for _, tt := range tests {
		got := WithAlpha(base, tt.alpha)
		if got.A != tt.want {
			t.Errorf("WithAlpha(%v).A = %d, want %d", tt.alpha, got.A, tt.want)
		}
		if got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("WithAlpha(%v) changed RGB: %+v", tt.alpha, got)
		}
	}
}

// TestImageSurfaceResize 测试表面尺寸随视口同步
func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(800, 600)
	if w, h := s.Size(); w != 800 || h != 600 {
		t.Fatalf("Size() = %dx%d, want 800x600", w, h)
	}

	s.Resize(1024, 768)
	if w, h := s.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() after resize = %dx%d, want 1024x768", w, h)
	}
	if b := s.Image().Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Errorf("image bounds = %v, want 1024x768", b)
	}
}

// TestImageSurfaceResizeClampsZero 测试 0 尺寸视口不会导致崩溃
func TestImageSurfaceResizeClampsZero(t *testing.T) {
	s := NewImageSurface(0, 0)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", w, h)
	}
}

// TestImageSurfaceVisibility 测试显示状态（默认隐藏）
func TestImageSurfaceVisibility(t *testing.T) {
	s := NewImageSurface(10, 10)
	if s.Visible() {
		t.Error("new surface should be hidden")
	}
	s.SetVisible(true)
	if !s.Visible() {
		t.Error("SetVisible(true) had no effect")
	}
}

// TestRecorder 测试记录表面
func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 100)
	r.FillCircle(1, 2, 5, color.White)
	r.StrokeLine(0, 0, 10, 10, 2, color.Black)

	if r.Count(OpCircle) != 1 || r.Count(OpLine) != 1 {
		t.Fatalf("ops = %+v", r.Ops)
	}
	if r.Blank() {
		t.Error("Blank() = true after drawing")
	}

	r.Clear()
	if !r.Blank() {
		t.Error("Blank() = false after Clear")
	}
	if r.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", r.Clears())
	}

	r.FillCircle(1, 2, 5, color.White)
	r.Resize(200, 50)
	if w, h := r.Size(); w != 200 || h != 50 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if !r.Blank() {
		t.Error("Resize should clear content")
	}
}
