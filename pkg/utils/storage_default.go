//go:build !android

package utils

import (
	"fmt"
	"os"
)

// EnsureStorageDir 检查设置存储的前提条件
//
// 桌面平台上 gdata 在用户主目录下自行创建 appName 对应的目录,
// 这里只确认主目录可解析并可写。
func EnsureStorageDir(appName string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("no home directory for %s settings: %w", appName, err)
	}
	return probeWritable(home)
}

// StoragePath 返回平台特定的存储根目录,桌面平台由 gdata 决定,返回空字符串
func StoragePath(appName string) string {
	return ""
}
