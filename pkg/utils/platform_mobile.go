//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端构建总是触摸操作，准星不显示
func IsMobile() bool {
	return true
}
