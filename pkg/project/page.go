package project

import (
	"context"
	"errors"
	"log"
)

// Section 页面内容区块
type Section struct {
	ID      string   // 锚点（侧边栏链接目标）
	Heading string   // 标题
	Lines   []string // 段落行
}

// Page 渲染后的项目页
// 成功时 Sections 恰好为五个区块；失败时 Sections 为空、Error 为唯一的错误信息
type Page struct {
	ID           string
	Title        string
	SidebarTitle string
	Sections     []Section
	Error        string
}

// Failed 报告页面是否为错误页
func (p *Page) Failed() bool {
	return p.Error != ""
}

// Section 按ID查找区块
func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs 区块顺序（与侧边栏链接一致）
var SectionIDs = []string{"intro", "design", "implementation", "results", "future"}

// Render 将记录渲染为页面
// design 与 implementation 中的换行渲染为独立的行
func Render(rec *Record) *Page {
	return &Page{
		ID:           rec.ID,
		Title:        rec.Title,
		SidebarTitle: rec.Title,
		Sections: []Section{
			{ID: "intro", Heading: "Introduction", Lines: []string{rec.Intro}},
			{ID: "design", Heading: "Design & Architecture", Lines: splitLines(rec.Design)},
			{ID: "implementation", Heading: "Implementation", Lines: splitLines(rec.Implementation)},
			{ID: "results", Heading: "Results", Lines: []string{rec.Results}},
			{ID: "future", Heading: "Future Work", Lines: []string{rec.Future}},
		},
	}
}

// ErrorPage 构造只包含一条错误信息的页面
func ErrorPage(id string, err error) *Page {
	return &Page{ID: id, Error: errorMessage(err)}
}

// Load 读取数据源并渲染指定项目
// 任何错误都被转换为错误页，不会向上传播
func Load(ctx context.Context, src Source, id string) *Page {
	if id == "" {
		id = DefaultID
	}
	data, err := src.Load(ctx)
	if err != nil {
		log.Printf("[Project] Failed to load %s: %v", src, err)
		return ErrorPage(id, err)
	}
	rec, err := Lookup(data, id)
	if err != nil {
		log.Printf("[Project] Lookup %q failed: %v", id, err)
		return ErrorPage(id, err)
	}
	log.Printf("[Project] Loaded %q from %s", id, src)
	return Render(rec)
}

// errorMessage 面向用户的错误信息
func errorMessage(err error) string {
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrNotFound):
		return "Project not found"
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "Failed to load data: timed out"
	default:
		return err.Error()
	}
}
