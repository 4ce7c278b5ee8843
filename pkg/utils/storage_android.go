//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 上 gdata 的设置目录存在并可写
//
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会预先创建子目录，
// 因此打开设置存储前需要调用此函数。
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	dir := filepath.Join(root, "settings")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(testFile)
}

// GetStoragePath 返回应用私有存储根目录，无法检测包名时返回空字符串
func GetStoragePath() string {
	// /proc/self/cmdline 以 NUL 分隔，第一个字段即包名
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	pkg, _, _ := strings.Cut(string(data), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
