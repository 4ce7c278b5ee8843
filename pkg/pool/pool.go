// Package pool 提供瞬时视觉对象的无序对象池
package pool

// ExpiredFunc 判断对象在时间 now（毫秒）时是否已过期
type ExpiredFunc[T any] func(item T, now float64) bool

// Pool 是同一类瞬时对象的无序集合
//
// 对象由生成器通过 Add 加入，由 Prune 按过期条件移除。
// 顺序无意义，删除使用 swap-remove。
// 池只在单个调度 goroutine 上使用，不加锁；
// ForEach 回调中不得调用 Add/Prune。
type Pool[T any] struct {
	items   []T
	expired ExpiredFunc[T]
}

// New 创建对象池
// expired 为 nil 时对象永不过期（只能通过 Clear 清空）
func New[T any](expired ExpiredFunc[T]) *Pool[T] {
	return &Pool[T]{
		items:   make([]T, 0, 64),
		expired: expired,
	}
}

// Add 加入一个对象
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Prune 移除所有在 now 时已过期的对象，返回移除数量
func (p *Pool[T]) Prune(now float64) int {
	if p.expired == nil {
		return 0
	}
	removed := 0
	for i := 0; i < len(p.items); i++ {
		if !p.expired(p.items[i], now) {
			continue
		}
		last := len(p.items) - 1
		p.items[i] = p.items[last]
		var zero T
		p.items[last] = zero
		p.items = p.items[:last]
		i--
		removed++
	}
	return removed
}

// ForEach 对每个存活对象调用 fn
func (p *Pool[T]) ForEach(fn func(item T)) {
	for _, item := range p.items {
		fn(item)
	}
}

// Len 返回存活对象数量
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Clear 清空对象池
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
