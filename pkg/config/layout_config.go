package config

// 布局配置常量
// 本文件定义了窗口与页面布局参数，所有坐标均为逻辑像素

// Window Configuration (窗口配置)
const (
	// WindowWidth 默认窗口宽度
	WindowWidth = 1280

	// WindowHeight 默认窗口高度
	WindowHeight = 800

	// WindowTitle 窗口标题
	WindowTitle = "folio"

	// TicksPerSecond 逻辑帧率，调度器每帧推进 1000/TicksPerSecond 毫秒
	TicksPerSecond = 60

	// MobileBreakpoint 视口宽度小于该值时使用移动端导航（汉堡菜单）
	MobileBreakpoint = 760
)

// Page Layout (页面布局)
const (
	// NavBarHeight 顶部导航栏高度
	NavBarHeight = 56.0

	// NavHideThreshold 向下滚动超过该距离后才允许隐藏导航栏
	NavHideThreshold = 50.0

	// SidebarWidth 项目详情页侧边栏宽度
	SidebarWidth = 220.0

	// ContentPadding 内容区内边距
	ContentPadding = 32.0

	// LineHeight 正文行高
	LineHeight = 18.0

	// SectionGap 段落之间的间距
	SectionGap = 48.0

	// RevealOffset 滚动显现动画的初始下移距离
	RevealOffset = 30.0

	// RevealDuration 滚动显现动画时长（秒）
	RevealDuration = 0.6

	// FadeInDelayMs 页面加载后开始淡入前的延迟（毫秒）
	FadeInDelayMs = 100.0

	// FadeInDuration 页面淡入时长（秒）
	FadeInDuration = 0.5

	// ScrollIndicatorParallax 滚动提示的视差系数
	ScrollIndicatorParallax = -0.5

	// ScrollWheelStep 鼠标滚轮每格滚动距离
	ScrollWheelStep = 48.0
)
