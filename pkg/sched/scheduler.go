// Package sched 提供单线程协作式调度器
//
// 调度器模拟浏览器的 setInterval / setTimeout / requestAnimationFrame：
//   - 所有回调都在调用 Advance 的同一个 goroutine 上执行（ebiten 的 Update）
//   - 时间是虚拟时钟（毫秒），由 Advance 推进，测试可精确控制
//   - 每个任务返回一个 Handle，Cancel 重复调用是安全的空操作
package sched

import "log"

// Handle 是已调度任务的句柄
// 0 保留为无效句柄（相当于 JS 中的 null）
type Handle uint64

// taskKind 任务类型
type taskKind int

const (
	kindInterval taskKind = iota // 固定间隔重复触发
	kindTimeout                  // 延迟触发一次
	kindFrame                    // 下一帧触发一次
)

// task 调度任务
type task struct {
	id        Handle
	kind      taskKind
	interval  float64 // 重复间隔（毫秒），仅 kindInterval
	due       float64 // 下次触发时间（虚拟时钟，毫秒）
	fn        func()
	cancelled bool
}

// Scheduler 协作式调度器
//
// 一次 Advance 的执行顺序：
//  1. 按到期时间顺序触发所有到期的定时器（时钟推进到各自的到期时间）
//  2. 时钟推进到目标时间
//  3. 执行本次 Advance 之前请求的帧回调
//
// 帧回调中再次请求的帧回调在下一次 Advance 中执行，不会在同一帧内重入。
type Scheduler struct {
	now    float64 // 当前虚拟时间（毫秒）
	nextID uint64

	tasks  map[Handle]*task // 所有待执行任务（定时器 + 帧回调）
	frames []*task          // 待执行的帧回调（按请求顺序）
}

// NewScheduler 创建调度器，虚拟时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1, // ID从1开始,0保留为无效句柄
		tasks:  make(map[Handle]*task),
		frames: make([]*task, 0),
	}
}

// Now 返回当前虚拟时间（毫秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Every 注册固定间隔的重复回调（setInterval）
// interval <= 0 时拒绝注册并返回无效句柄
func (s *Scheduler) Every(intervalMs float64, fn func()) Handle {
	if intervalMs <= 0 {
		log.Printf("[Scheduler] Warning: rejected interval %.1fms (must be > 0)", intervalMs)
		return 0
	}
	return s.add(&task{
		kind:     kindInterval,
		interval: intervalMs,
		due:      s.now + intervalMs,
		fn:       fn,
	})
}

// After 注册延迟回调（setTimeout）
func (s *Scheduler) After(delayMs float64, fn func()) Handle {
	if delayMs < 0 {
		delayMs = 0
	}
	return s.add(&task{
		kind: kindTimeout,
		due:  s.now + delayMs,
		fn:   fn,
	})
}

// RequestFrame 请求在下一帧执行回调（requestAnimationFrame）
func (s *Scheduler) RequestFrame(fn func()) Handle {
	t := &task{kind: kindFrame, fn: fn}
	h := s.add(t)
	s.frames = append(s.frames, t)
	return h
}

// Cancel 取消任务
// 对无效句柄、已执行或已取消的句柄调用是安全的空操作
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	if t, ok := s.tasks[h]; ok {
		t.cancelled = true
		delete(s.tasks, h)
	}
}

// Active 报告句柄是否仍处于待执行状态
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// PendingFrames 返回待执行的帧回调数量
func (s *Scheduler) PendingFrames() int {
	n := 0
	for _, t := range s.frames {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// ActiveTimers 返回活动的定时器数量（interval + timeout）
func (s *Scheduler) ActiveTimers() int {
	n := 0
	for _, t := range s.tasks {
		if t.kind != kindFrame {
			n++
		}
	}
	return n
}

// Advance 推进虚拟时钟 deltaMs 毫秒，并执行到期的回调
func (s *Scheduler) Advance(deltaMs float64) {
	if deltaMs < 0 {
		deltaMs = 0
	}
	target := s.now + deltaMs

	// 1. 按顺序触发到期定时器
	for {
		next := s.nextDueTimer(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.kind == kindInterval {
			next.due += next.interval
		} else {
			delete(s.tasks, next.id)
		}
		next.fn()
	}
	s.now = target

	// 2. 执行帧回调（交换列表，回调中新请求的帧进入下一轮）
	frames := s.frames
	s.frames = make([]*task, 0, len(frames))
	for _, t := range frames {
		if t.cancelled {
			continue
		}
		delete(s.tasks, t.id)
		t.fn()
	}
}

// nextDueTimer 找出到期时间最早（<= limit）的定时器
// 到期时间相同时按注册顺序（ID 小者优先）
func (s *Scheduler) nextDueTimer(limit float64) *task {
	var best *task
	for _, t := range s.tasks {
		if t.kind == kindFrame || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) add(t *task) Handle {
	t.id = Handle(s.nextID)
	s.nextID++
	s.tasks[t.id] = t
	return t.id
}
