// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clickSlop 按下与释放之间的最大位移，超过则视为拖动而不是点击
const clickSlop = 6

// InputSource 原始输入来源
// 生产环境使用 EbitenInput，测试注入假实现
type InputSource interface {
	// PointerPosition 返回指针位置（触摸优先，其次鼠标）
	PointerPosition() (x, y int)
	// PointerPressed 指针是否处于按下状态
	PointerPressed() bool
	// EscapeJustPressed 本帧是否刚按下 Escape
	EscapeJustPressed() bool
	// Wheel 本帧滚轮增量
	Wheel() (dx, dy float64)
}

// EbitenInput 基于 ebiten 的输入来源
type EbitenInput struct{}

// PointerPosition 返回指针位置
func (EbitenInput) PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// PointerPressed 检查是否有指针按下（鼠标左键或触摸）
func (EbitenInput) PointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// EscapeJustPressed 检查本帧是否刚按下 Escape
func (EbitenInput) EscapeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Wheel 返回滚轮增量
func (EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// PointerFrame 一帧的指针事件
type PointerFrame struct {
	X, Y         float64
	Moved        bool // 位置相对上一帧发生变化
	Pressed      bool // 当前处于按下状态
	JustPressed  bool
	JustReleased bool
	Clicked      bool // 释放位置与按下位置足够接近
	Escape       bool
	WheelY       float64
}

// PointerTracker 把逐帧的原始输入转换为移动/按下/释放/点击事件
//
// 触摸释放的那一帧已经读不到触摸位置，因此释放事件使用上一帧记录的位置。
type PointerTracker struct {
	source InputSource

	lastX, lastY   int
	pressed        bool
	pressX, pressY int
	primed         bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker(source InputSource) *PointerTracker {
	return &PointerTracker{source: source}
}

// Poll 读取本帧输入（每帧调用一次）
func (t *PointerTracker) Poll() PointerFrame {
	pressed := t.source.PointerPressed()
	x, y := t.lastX, t.lastY
	if pressed || !t.pressed {
		x, y = t.source.PointerPosition()
	}

	f := PointerFrame{
		X:       float64(x),
		Y:       float64(y),
		Moved:   t.primed && (x != t.lastX || y != t.lastY),
		Pressed: pressed,
		Escape:  t.source.EscapeJustPressed(),
	}
	_, f.WheelY = t.source.Wheel()

	switch {
	case pressed && !t.pressed:
		f.JustPressed = true
		t.pressX, t.pressY = x, y
	case !pressed && t.pressed:
		f.JustReleased = true
		f.Clicked = abs(x-t.pressX) <= clickSlop && abs(y-t.pressY) <= clickSlop
	}

	t.pressed = pressed
	t.lastX, t.lastY = x, y
	t.primed = true
	return f
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
