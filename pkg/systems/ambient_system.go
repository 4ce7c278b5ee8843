package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/sched"
)

// AmbientSystem 环境模式装饰效果（树叶、风、主题下落物）
//
// 元素全部交给 ElementHost 渲染，每个元素在动画结束信号到来时自我移除，
// 本系统只负责按节奏生成。
type AmbientSystem struct {
	host ElementHost // 为 nil 时所有生成都是空操作（页面上没有容器）
	rng  *rand.Rand
	cfg  *config.EffectsConfig

	leaves *IntervalSpawner
	gusts  *IntervalSpawner
}

// NewAmbientSystem 创建环境效果系统（生成器初始为停止状态）
func NewAmbientSystem(s *sched.Scheduler, host ElementHost, cfg *config.EffectsConfig, rng *rand.Rand) *AmbientSystem {
	a := &AmbientSystem{
		host: host,
		rng:  rng,
		cfg:  cfg,
	}
	a.leaves = NewIntervalSpawner("leaves", s, cfg.Ambient.LeafIntervalMs, func() { a.SpawnLeaf() })
	a.gusts = NewIntervalSpawner("gusts", s, cfg.Ambient.GustIntervalMs, func() { a.SpawnGust() })
	return a
}

// Start 启动树叶与风的定时生成（幂等）
func (a *AmbientSystem) Start() {
	a.leaves.Start()
	a.gusts.Start()
}

// Stop 停止定时生成（幂等）
// 已在舞台上的元素继续播放，结束后自行移除
func (a *AmbientSystem) Stop() {
	a.leaves.Stop()
	a.gusts.Stop()
}

// Running 报告是否有任一生成器在运行
func (a *AmbientSystem) Running() bool {
	return a.leaves.Running() || a.gusts.Running()
}

// ActiveSpawners 返回运行中的生成器数量
func (a *AmbientSystem) ActiveSpawners() int {
	n := 0
	if a.leaves.Running() {
		n++
	}
	if a.gusts.Running() {
		n++
	}
	return n
}

// SpawnLeaf 生成一片树叶
func (a *AmbientSystem) SpawnLeaf() *components.ElementComponent {
	if a.host == nil {
		return nil
	}
	return a.attach(entities.NewLeaf(a.rng, a.cfg.Ambient.Leaf))
}

// SpawnGust 生成一阵风
func (a *AmbientSystem) SpawnGust() *components.ElementComponent {
	if a.host == nil {
		return nil
	}
	return a.attach(entities.NewGust(a.rng, a.cfg.Ambient.Gust))
}

// SpawnFalling 生成主题切换时的下落装饰物，返回生成数量
// 未知主题不生成
func (a *AmbientSystem) SpawnFalling(theme string, viewportWidth float64) int {
	if a.host == nil {
		return 0
	}
	tc, ok := a.cfg.Themes[theme]
	if !ok {
		log.Printf("[AmbientSystem] Warning: unknown theme %q", theme)
		return 0
	}
	for i := 0; i < tc.Count; i++ {
		a.attach(entities.NewFallingItem(a.rng, theme, tc, viewportWidth))
	}
	return tc.Count
}

// attach 将元素交给 host，并注册动画结束时的自我移除
func (a *AmbientSystem) attach(el *components.ElementComponent) *components.ElementComponent {
	a.host.Append(el)
	a.host.OnAnimationEnd(el, func() { a.host.Remove(el) })
	return el
}
