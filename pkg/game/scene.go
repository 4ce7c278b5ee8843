package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page of the site (landing page, project detail page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景切换时由 SceneManager 调用
//
// OnEnter 在场景成为活动场景时调用（启动计时器、发起数据加载）；
// OnExit 在场景被替换或程序退出时调用（取消计时器和帧回调）。
type Lifecycle interface {
	OnEnter()
	OnExit()
}

// Resizable 是一个可选接口，视口尺寸变化时调用
type Resizable interface {
	Resize(width, height int)
}

// VisibilityAware 是一个可选接口，窗口失焦/聚焦时调用
type VisibilityAware interface {
	SetHidden(hidden bool)
}
