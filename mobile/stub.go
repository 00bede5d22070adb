//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 桌面端入口在根目录 main.go；移动端入口在 mobile.go，仅在 -tags mobile 时编译。
package mobile

// Dummy 保证包在非移动端构建时也能被引用
func Dummy() {}
