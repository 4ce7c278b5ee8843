//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口；桌面构建只保留导出符号
package mobile

// Dummy 保证包在没有 mobile 标签时仍可被 go build ./... 编译
func Dummy() {}
