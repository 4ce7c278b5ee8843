package surface

import "image/color"

// OpKind 记录的绘图操作类型
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpCircle
)

// Op 一次绘图操作
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64 // 线段端点；圆使用 X0,Y0 作为圆心
	Width          float64 // 线宽或半径
	Color          color.Color
}

// Recorder 记录绘图操作而不产生像素的表面
// 用于无头运行（测试、导出工具）
type Recorder struct {
	Ops     []Op
	width   int
	height  int
	visible bool
	clears  int
}

// NewRecorder 创建记录表面
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Clear 清空表面，同时丢弃之前记录的绘图操作
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: OpClear})
	r.clears++
}

// StrokeLine 记录画线操作
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

// FillCircle 记录画圆操作
func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, Width: radius, Color: clr})
}

// Size 返回像素尺寸
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Resize 同步像素尺寸（内容被清空）
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Ops = r.Ops[:0]
}

// SetVisible 显示或隐藏表面
func (r *Recorder) SetVisible(visible bool) {
	r.visible = visible
}

// Visible 报告表面是否可见
func (r *Recorder) Visible() bool {
	return r.visible
}

// Count 返回当前内容中指定类型操作的数量
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Clears 返回累计清空次数
func (r *Recorder) Clears() int {
	return r.clears
}

// Blank 报告表面当前是否没有任何绘制内容
func (r *Recorder) Blank() bool {
	return r.Count(OpLine) == 0 && r.Count(OpCircle) == 0
}
