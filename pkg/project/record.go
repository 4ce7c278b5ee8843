// Package project 加载并渲染项目详情页内容
//
// 数据源是一个 JSON 对象：项目ID -> 项目记录。
// 加载或查找失败是页面唯一的错误类别，由 Load 转换为单条错误信息。
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultID 未指定项目ID时使用的默认项目
const DefaultID = "search-engine"

// DefaultDataPath 嵌入的默认项目数据
const DefaultDataPath = "data/project_data.json"

// ErrNotFound 数据中不存在请求的项目ID
var ErrNotFound = errors.New("project not found")

// ErrInvalidData 数据不是合法的 JSON 对象
var ErrInvalidData = errors.New("invalid project data")

// Record 项目记录
type Record struct {
	ID             string
	Title          string
	Intro          string
	Design         string // 可能包含换行
	Implementation string // 可能包含换行
	Results        string
	Future         string
}

// Lookup 在项目数据中按ID查找记录
func Lookup(data []byte, id string) (*Record, error) {
	if id == "" {
		id = DefaultID
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidData
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is %s", ErrInvalidData, root.Type)
	}

	// 逐项比较键名，ID 中的 '.' 或通配符不会被当作路径语法
	var found gjson.Result
	root.ForEach(func(key, value gjson.Result) bool {
		if key.String() == id {
			found = value
			return false
		}
		return true
	})
	if !found.Exists() || !found.IsObject() {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return &Record{
		ID:             id,
		Title:          found.Get("title").String(),
		Intro:          found.Get("intro").String(),
		Design:         found.Get("design").String(),
		Implementation: found.Get("implementation").String(),
		Results:        found.Get("results").String(),
		Future:         found.Get("future").String(),
	}, nil
}

// Summary 项目卡片摘要（落地页使用）
type Summary struct {
	ID    string
	Title string
	Intro string
}

// Summaries 返回数据中所有项目的摘要（按出现顺序），跳过非对象记录
func Summaries(data []byte) []Summary {
	var out []Summary
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			out = append(out, Summary{
				ID:    key.String(),
				Title: value.Get("title").String(),
				Intro: value.Get("intro").String(),
			})
		}
		return true
	})
	return out
}

// IDs 返回数据中的全部项目ID（按出现顺序）
func IDs(data []byte) []string {
	var ids []string
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		ids = append(ids, key.String())
		return true
	})
	return ids
}

// splitLines 按换行拆分文本，保留空行
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
