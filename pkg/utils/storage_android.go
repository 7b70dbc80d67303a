//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 初始化前创建 Android 上的存储目录
//
// gdata 使用 /data/data/{package}/ 存放数据但不会预先创建子目录。
func EnsureStorageDir(appName string) error {
	root := StoragePath(appName)
	if root == "" {
		return fmt.Errorf("cannot resolve Android package for %s", appName)
	}

	dir := filepath.Join(root, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return probeWritable(dir)
}

// StoragePath 返回 /data/data/{package},无法识别包名时返回空字符串
func StoragePath(appName string) string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取进程名(即包名)
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	// cmdline 以 NUL 分隔参数,第一个参数为包名
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
