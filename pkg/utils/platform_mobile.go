//go:build mobile

package utils

// IsMobile 移动端构建（-tags mobile）始终使用移动端布局
func IsMobile() bool {
	return true
}
