//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 移动端入口在 mobile.go 和 embed.go 中，仅在使用 -tags mobile 时编译。
package mobile

// Dummy 在桌面构建中保持 mobile 包可被引用
func Dummy() {}
