//go:build !mobile

package utils

import "os"

// IsMobile 报告是否使用移动端布局
// 桌面构建默认 false；设置 FOLIO_MOBILE_EMULATE=1 可在桌面上模拟（调试窄屏导航）
func IsMobile() bool {
	return os.Getenv("FOLIO_MOBILE_EMULATE") == "1"
}
