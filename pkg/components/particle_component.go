package components

import "image/color"

// ParticleKind 粒子运动规则
type ParticleKind uint8

const (
	// ParticleOrbit 绕光标做圆周运动的轨迹粒子，永不过期（随创意模式关闭而清空）
	ParticleOrbit ParticleKind = iota
	// ParticleFree 自由速度粒子，速度按阻尼衰减，生命值按 Decay 递减至 0 后过期
	ParticleFree
)

// String 返回粒子类型名称
func (k ParticleKind) String() string {
	switch k {
	case ParticleOrbit:
		return "orbit"
	case ParticleFree:
		return "free"
	default:
		return "unknown"
	}
}

// ParticleComponent 创意模式下的单个轨迹粒子
//
// 两种运动规则共用同一个结构，由 Kind 选择生效的字段。
// 纯数据组件，更新与绘制逻辑在 systems 包中。
type ParticleComponent struct {
	Kind ParticleKind

	// 位置（屏幕坐标）
	X, Y float64
	// 上一帧位置（用于绘制轨迹线段）
	PrevX, PrevY float64

	// Orbit 规则
	Theta  float64 // 当前角相位（弧度）
	Radius float64 // 轨道半径（像素）
	Speed  float64 // 每帧角速度（弧度）
	Width  float64 // 线宽（像素）

	// Free 规则
	VX, VY float64 // 速度（像素/帧）
	Life   float64 // 剩余生命 [0,1]，同时作为透明度
	Decay  float64 // 每帧生命衰减量
	Size   float64 // 圆点半径（像素）

	Color color.RGBA
}
