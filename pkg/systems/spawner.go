package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/sched"
)

// IntervalSpawner 固定间隔生成器
//
// 每次定时触发恰好生成一个对象。handle 为 0 表示未运行：
// 对运行中的生成器调用 Start、对已停止的生成器调用 Stop 都是空操作，
// 因此不会出现两个并发定时器。
type IntervalSpawner struct {
	name       string
	scheduler  *sched.Scheduler
	intervalMs float64
	spawn      func()
	handle     sched.Handle
}

// NewIntervalSpawner 创建固定间隔生成器（初始为停止状态）
func NewIntervalSpawner(name string, s *sched.Scheduler, intervalMs float64, spawn func()) *IntervalSpawner {
	return &IntervalSpawner{
		name:       name,
		scheduler:  s,
		intervalMs: intervalMs,
		spawn:      spawn,
	}
}

// Start 启动定时生成；已在运行时为空操作
func (sp *IntervalSpawner) Start() {
	if sp.handle != 0 {
		return
	}
	sp.handle = sp.scheduler.Every(sp.intervalMs, sp.spawn)
	log.Printf("[Spawner] %s started (every %.0fms)", sp.name, sp.intervalMs)
}

// Stop 停止定时生成；未运行时为空操作
func (sp *IntervalSpawner) Stop() {
	if sp.handle == 0 {
		return
	}
	sp.scheduler.Cancel(sp.handle)
	sp.handle = 0
	log.Printf("[Spawner] %s stopped", sp.name)
}

// Running 报告生成器是否在运行
func (sp *IntervalSpawner) Running() bool {
	return sp.handle != 0
}

// PointerSpawner 指针事件驱动的生成器
//   - 移动：以 chance 概率生成一个对象
//   - 点击：一次生成 burst 个对象
type PointerSpawner struct {
	rng    *rand.Rand
	chance float64
	burst  int
	spawn  func(x, y float64)
}

// NewPointerSpawner 创建指针生成器
func NewPointerSpawner(rng *rand.Rand, chance float64, burst int, spawn func(x, y float64)) *PointerSpawner {
	return &PointerSpawner{
		rng:    rng,
		chance: chance,
		burst:  burst,
		spawn:  spawn,
	}
}

// OnMove 处理指针移动，返回是否生成了对象
func (ps *PointerSpawner) OnMove(x, y float64) bool {
	if ps.rng.Float64() >= ps.chance {
		return false
	}
	ps.spawn(x, y)
	return true
}

// OnClick 处理点击，返回生成数量
func (ps *PointerSpawner) OnClick(x, y float64) int {
	for i := 0; i < ps.burst; i++ {
		ps.spawn(x, y)
	}
	return ps.burst
}
