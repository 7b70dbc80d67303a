// embed.go - 配置嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 图片与音频从 assets/ 按需读取，缺失时使用占位资源
//
//go:embed data/game.yaml
var dataFS embed.FS
