package components

// ElementKind 舞台元素类型
type ElementKind uint8

const (
	// ElementLeaf 环境模式飘落的树叶
	ElementLeaf ElementKind = iota
	// ElementGust 环境模式横穿屏幕的风
	ElementGust
	// ElementFalling 主题切换时从顶部落下的装饰物（树叶、雪花）
	ElementFalling
)

// String 返回元素类型名称
func (k ElementKind) String() string {
	switch k {
	case ElementLeaf:
		return "leaf"
	case ElementGust:
		return "gust"
	case ElementFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// ElementComponent 舞台上由动画驱动的装饰元素
//
// 元素不拥有计时器：舞台推进 Elapsed，到达 Duration 时发出动画结束信号，
// 由生成方注册的回调将其移除。
type ElementComponent struct {
	ID   uint64 // 舞台分配的唯一ID（0 表示尚未加入舞台）
	Kind ElementKind

	TopPct float64 // 起始纵向位置（视口高度百分比）
	Left   float64 // 起始横向位置（像素），仅 ElementFalling

	RotStart float64 // 起始旋转角（度）
	RotEnd   float64 // 结束旋转角（度）

	Duration float64 // 动画时长（秒）
	Elapsed  float64 // 已播放时间（秒）

	Theme string // ElementFalling 使用的主题名（决定外观）
}

// Progress 返回动画进度 [0,1]
func (e *ElementComponent) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Elapsed / e.Duration
	if p > 1 {
		return 1
	}
	return p
}
