package page

import "log"

// ProjectsHash 项目区块可见时的 URL 片段
const ProjectsHash = "#projects"

// projectsThreshold 项目区块可见比例达到该值视为进入视口
const projectsThreshold = 0.1

// ProjectsObserver 落地页项目区块观察器
//   - 进入视口：显示打字机标语，地址片段设为 #projects
//   - 离开视口且滚动位置在区块上方：隐藏标语并清除地址片段
//   - 离开视口且已滚过区块：只隐藏标语，片段保留
type ProjectsObserver struct {
	Section    Rect
	typewriter bool
	hash       string
}

// Update 按视口更新状态
func (o *ProjectsObserver) Update(v Viewport) {
	visible := v.VisibleRatio(o.Section, 0, 0) >= projectsThreshold
	if visible {
		if !o.typewriter || o.hash != ProjectsHash {
			log.Printf("[ProjectsObserver] projects section in view")
		}
		o.typewriter = true
		o.hash = ProjectsHash
		return
	}
	o.typewriter = false
	if v.ScrollY < o.Section.Y {
		o.hash = ""
	}
}

// ShowTypewriter 报告是否显示打字机标语
func (o *ProjectsObserver) ShowTypewriter() bool {
	return o.typewriter
}

// Hash 返回当前 URL 片段（空字符串表示无片段）
func (o *ProjectsObserver) Hash() string {
	return o.hash
}
