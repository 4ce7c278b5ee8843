// Package mode 管理页面装饰效果的两种模式（环境 / 创意）
package mode

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/surface"
	"github.com/decker502/folio/pkg/systems"
)

// Mode 效果模式
type Mode int

const (
	// Ambient 环境模式：树叶与风通过舞台元素动画（默认）
	Ambient Mode = iota
	// Creative 创意模式：光标驱动的粒子/画笔循环
	Creative
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case Ambient:
		return "ambient"
	case Creative:
		return "creative"
	default:
		return "unknown"
	}
}

// Options 控制器依赖
type Options struct {
	Scheduler *sched.Scheduler
	Host      systems.ElementHost // 可为 nil：环境效果为空操作
	Config    *config.EffectsConfig
	Rand      *rand.Rand
	Trail     surface.Surface
	Paint     surface.Surface
}

// Controller 模式状态机
//
// 控制器独占两种模式的全部资源（生成器、对象池、帧回调句柄），
// 保证任意时刻环境生成器与创意循环不会同时处于活动状态。
// 其他组件只能通过 CurrentMode 读取模式。
type Controller struct {
	mode    Mode
	hidden  bool
	started bool

	ambient *systems.AmbientSystem
	loop    *systems.CreativeLoop

	viewportWidth float64
	listeners     []func(Mode)
}

// NewController 创建模式控制器（初始为环境模式，尚未启动）
func NewController(opts Options) *Controller {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultEffectsConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w, _ := opts.Trail.Size()
	return &Controller{
		mode:          Ambient,
		ambient:       systems.NewAmbientSystem(opts.Scheduler, opts.Host, cfg, rng),
		loop:          systems.NewCreativeLoop(opts.Scheduler, cfg.Creative, rng, opts.Trail, opts.Paint),
		viewportWidth: float64(w),
	}
}

// Start 启动当前模式的效果
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.activate(c.mode)
	log.Printf("[ModeController] Started in %s mode", c.mode)
}

// Stop 停止所有效果（生成器与循环）
func (c *Controller) Stop() {
	if !c.started {
		return
	}
	c.started = false
	c.ambient.Stop()
	c.loop.Stop()
	log.Printf("[ModeController] Stopped")
}

// CurrentMode 返回当前模式
func (c *Controller) CurrentMode() Mode {
	return c.mode
}

// Hidden 报告页面是否处于隐藏状态
func (c *Controller) Hidden() bool {
	return c.hidden
}

// OnModeChange 注册模式变化监听
func (c *Controller) OnModeChange(fn func(Mode)) {
	c.listeners = append(c.listeners, fn)
}

// SetMode 切换模式；目标与当前模式相同时为空操作
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	prev := c.mode
	c.mode = m

	if c.started {
		// 先释放旧模式的资源，再启动新模式
		switch prev {
		case Ambient:
			c.ambient.Stop()
		case Creative:
			c.loop.Stop()
		}
		c.activate(m)
	}

	log.Printf("[ModeController] %s -> %s", prev, m)
	for _, fn := range c.listeners {
		fn(m)
	}
}

// ToggleCreative 在两种模式之间切换（对应创意模式复选框）
func (c *Controller) ToggleCreative(on bool) {
	if on {
		c.SetMode(Creative)
	} else {
		c.SetMode(Ambient)
	}
}

// SetTrail 切换创意模式的轨迹变体；非创意模式下只记录，下次进入时生效
func (c *Controller) SetTrail(trail string) {
	c.loop.SetTrail(trail)
}

// Trail 返回当前轨迹变体
func (c *Controller) Trail() string {
	return c.loop.Trail()
}

// SetHidden 处理页面可见性变化
// 只暂停/恢复环境生成器；创意模式下恢复可见不会启动环境生成器
func (c *Controller) SetHidden(hidden bool) {
	if hidden == c.hidden {
		return
	}
	c.hidden = hidden
	if hidden {
		c.ambient.Stop()
		return
	}
	if c.started && c.mode == Ambient {
		c.ambient.Start()
	}
}

// Resize 同步视口尺寸
func (c *Controller) Resize(width, height int) {
	c.viewportWidth = float64(width)
	c.loop.Resize(width, height)
}

// PointerMove 转发指针移动
func (c *Controller) PointerMove(x, y float64) {
	c.loop.PointerMove(x, y)
}

// PointerDown 转发指针按下
func (c *Controller) PointerDown(x, y float64) {
	if c.mode != Creative {
		return
	}
	c.loop.PointerDown(x, y)
}

// PointerUp 转发指针释放
func (c *Controller) PointerUp() {
	c.loop.PointerUp()
}

// Click 转发点击
func (c *Controller) Click(x, y float64) {
	if c.mode != Creative {
		return
	}
	c.loop.Click(x, y)
}

// SpawnThemeBurst 主题切换时的下落装饰物，返回生成数量
// 只在环境模式下生成
func (c *Controller) SpawnThemeBurst(theme string) int {
	if c.mode != Ambient {
		return 0
	}
	return c.ambient.SpawnFalling(theme, c.viewportWidth)
}

// AmbientActive 报告环境生成器是否在运行
func (c *Controller) AmbientActive() bool {
	return c.ambient.Running()
}

// ActiveAmbientSpawners 返回运行中的环境生成器数量
func (c *Controller) ActiveAmbientSpawners() int {
	return c.ambient.ActiveSpawners()
}

// LoopStats 返回创意循环统计
func (c *Controller) LoopStats() systems.LoopStats {
	return c.loop.Stats()
}

func (c *Controller) activate(m Mode) {
	switch m {
	case Ambient:
		if !c.hidden {
			c.ambient.Start()
		}
	case Creative:
		c.loop.Start()
	}
}
