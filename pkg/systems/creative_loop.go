package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/pool"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/surface"
)

// CreativeLoop 创意模式的逐帧渲染/更新循环
//
// 拥有两个对象池和两个绘图表面：
//   - 画笔圆点（paint 表面）：按时间戳淡出，超过淡出窗口后移除
//   - 轨迹粒子（trail 表面）：orbit 变体绕光标旋转且不过期；free 变体按生命衰减
//
// 每帧顺序：清空 paint → 修剪并绘制圆点 → 清空 trail → 更新并绘制粒子 → 修剪粒子 → 请求下一帧。
// 所有回调都在调度器所在的 goroutine 上执行，帧内不会被其他回调打断。
type CreativeLoop struct {
	scheduler *sched.Scheduler
	cfg       config.CreativeConfig
	rng       *rand.Rand

	trail surface.Surface
	paint surface.Surface

	particles *pool.Pool[*components.ParticleComponent]
	dots      *pool.Pool[*components.PaintDotComponent]
	pointer   *PointerSpawner

	frame    sched.Handle // 待执行的帧回调，0 表示没有
	running  bool
	painting bool

	cursorX, cursorY float64
	frames           uint64
}

// LoopStats 循环运行统计（调试叠加层使用）
type LoopStats struct {
	Running   bool
	Trail     string
	Particles int
	Dots      int
	Frames    uint64
}

// NewCreativeLoop 创建创意模式循环（初始为停止状态）
func NewCreativeLoop(s *sched.Scheduler, cfg config.CreativeConfig, rng *rand.Rand, trail, paint surface.Surface) *CreativeLoop {
	l := &CreativeLoop{
		scheduler: s,
		cfg:       cfg,
		rng:       rng,
		trail:     trail,
		paint:     paint,
		particles: pool.New[*components.ParticleComponent](ParticleExpired),
		dots:      pool.New[*components.PaintDotComponent](PaintDotExpiry(cfg.Paint.FadeMs)),
	}
	w, h := trail.Size()
	l.cursorX, l.cursorY = float64(w)/2, float64(h)/2
	l.pointer = NewPointerSpawner(rng, cfg.Free.SpawnChance, cfg.Free.Burst, l.spawnFree)
	return l
}

// Start 显示表面、初始化粒子池并开始逐帧循环；已运行时为空操作
func (l *CreativeLoop) Start() {
	if l.running {
		return
	}
	l.running = true

	l.trail.SetVisible(true)
	l.paint.SetVisible(true)
	l.trail.Clear()
	l.paint.Clear()

	l.particles.Clear()
	l.dots.Clear()
	if l.cfg.Trail == config.TrailOrbit {
		for i := 0; i < l.cfg.Orbit.Count; i++ {
			l.particles.Add(entities.NewOrbitParticle(l.rng, l.cfg.Orbit, l.cursorX, l.cursorY))
		}
	}

	l.frame = l.scheduler.RequestFrame(l.tick)
	log.Printf("[CreativeLoop] Started (trail=%s, particles=%d)", l.cfg.Trail, l.particles.Len())
}

// Stop 取消帧回调、清空对象池和表面并隐藏表面
// 重复调用是安全的
func (l *CreativeLoop) Stop() {
	l.scheduler.Cancel(l.frame)
	l.frame = 0

	wasRunning := l.running
	l.running = false
	l.painting = false

	l.particles.Clear()
	l.dots.Clear()
	l.trail.Clear()
	l.paint.Clear()
	l.trail.SetVisible(false)
	l.paint.SetVisible(false)

	if wasRunning {
		log.Printf("[CreativeLoop] Stopped after %d frames", l.frames)
	}
}

// Running 报告循环是否在运行
func (l *CreativeLoop) Running() bool {
	return l.running
}

// tick 单帧回调
func (l *CreativeLoop) tick() {
	l.frame = 0
	if !l.running {
		return
	}
	now := l.scheduler.Now()

	// 画笔圆点：先移除过期，再按透明度绘制
	l.paint.Clear()
	l.dots.Prune(now)
	l.dots.ForEach(func(d *components.PaintDotComponent) {
		alpha := PaintDotAlpha(d, now, l.cfg.Paint.FadeMs)
		l.paint.FillCircle(d.X, d.Y, l.cfg.Paint.Radius, surface.WithAlpha(d.Color, alpha))
	})

	// 轨迹粒子：更新、绘制，然后移除生命耗尽的粒子
	l.trail.Clear()
	l.particles.ForEach(func(p *components.ParticleComponent) {
		switch p.Kind {
		case components.ParticleOrbit:
			StepOrbit(p, l.cursorX, l.cursorY)
			l.trail.StrokeLine(p.PrevX, p.PrevY, p.X, p.Y, p.Width, p.Color)
		case components.ParticleFree:
			StepFree(p, l.cfg.Free.Damping)
			if p.Life > 0 {
				l.trail.FillCircle(p.X, p.Y, p.Size, surface.WithAlpha(p.Color, p.Life))
			}
		}
	})
	l.particles.Prune(now)

	l.frames++
	l.frame = l.scheduler.RequestFrame(l.tick)
}

// PointerMove 处理指针移动：更新光标；按住时盖印圆点；free 变体按概率生成粒子
func (l *CreativeLoop) PointerMove(x, y float64) {
	l.cursorX, l.cursorY = x, y
	if !l.running {
		return
	}
	if l.painting {
		l.stampDot(x, y)
	}
	if l.cfg.Trail == config.TrailFree {
		l.pointer.OnMove(x, y)
	}
}

// PointerDown 开始绘画并在按下位置盖印
func (l *CreativeLoop) PointerDown(x, y float64) {
	l.cursorX, l.cursorY = x, y
	if !l.running {
		return
	}
	l.painting = true
	l.stampDot(x, y)
}

// PointerUp 结束绘画
func (l *CreativeLoop) PointerUp() {
	l.painting = false
}

// Click 点击：free 变体在点击位置爆发一组粒子
func (l *CreativeLoop) Click(x, y float64) {
	if !l.running || l.cfg.Trail != config.TrailFree {
		return
	}
	l.pointer.OnClick(x, y)
}

// SetTrail 切换轨迹粒子变体（"orbit" 或 "free"）
// 运行中切换时先停止再以新变体重新启动，旧变体的粒子不会残留
func (l *CreativeLoop) SetTrail(trail string) {
	if trail == l.cfg.Trail {
		return
	}
	wasRunning := l.running
	if wasRunning {
		l.Stop()
	}
	log.Printf("[CreativeLoop] Trail %s -> %s", l.cfg.Trail, trail)
	l.cfg.Trail = trail
	if wasRunning {
		l.Start()
	}
}

// Trail 返回当前轨迹粒子变体
func (l *CreativeLoop) Trail() string {
	return l.cfg.Trail
}

// Resize 将两个表面的像素尺寸同步为视口尺寸
// 存活对象不重新定位
func (l *CreativeLoop) Resize(width, height int) {
	l.trail.Resize(width, height)
	l.paint.Resize(width, height)
}

// Stats 返回运行统计
func (l *CreativeLoop) Stats() LoopStats {
	return LoopStats{
		Running:   l.running,
		Trail:     l.cfg.Trail,
		Particles: l.particles.Len(),
		Dots:      l.dots.Len(),
		Frames:    l.frames,
	}
}

func (l *CreativeLoop) stampDot(x, y float64) {
	l.dots.Add(entities.NewPaintDot(l.rng, x, y, l.scheduler.Now()))
}

func (l *CreativeLoop) spawnFree(x, y float64) {
	l.particles.Add(entities.NewFreeParticle(l.rng, l.cfg.Free, x, y))
}
