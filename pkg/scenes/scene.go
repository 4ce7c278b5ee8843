package scenes

import (
	"math/rand/v2"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/project"
	"github.com/decker502/folio/pkg/sched"
	"github.com/decker502/folio/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 页面名称（SceneManager.Open 的 page 参数）
const (
	PageLanding = "landing"
	PageProject = "project"
)

// Deps 场景共享依赖，由 app 构造一次
type Deps struct {
	Scheduler    *sched.Scheduler
	Effects      *config.EffectsConfig
	Settings     *game.SettingsManager
	SceneManager *game.SceneManager
	Source       project.Source
	Projects     []project.Summary // 落地页项目卡片
	Input        utils.InputSource // 为 nil 时使用 ebiten 输入
	Rand         *rand.Rand
}

func (d *Deps) input() utils.InputSource {
	if d.Input == nil {
		return utils.EbitenInput{}
	}
	return d.Input
}

func (d *Deps) rng() *rand.Rand {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d.Rand
}

// NewFactory 返回按页面名创建场景的工厂
func NewFactory(deps *Deps) game.SceneFactory {
	return func(page, param string) game.Scene {
		switch page {
		case PageLanding:
			return NewLandingScene(deps)
		case PageProject:
			return NewProjectScene(deps, param)
		default:
			return nil
		}
	}
}
