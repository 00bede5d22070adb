// cmd/validate_outline/main.go
// 校验拖拽轮廓配置文件
//
// 用法：
//
//	go run ./cmd/validate_outline --file=data/outline.yaml
//	go run ./cmd/validate_outline --all
//
// 文件按与程序运行时相同的方式（embedded 包，"data/" 前缀）读取，
// --root 指定项目根目录。
package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/decker502/inoutanim/pkg/config"
	"github.com/decker502/inoutanim/pkg/embedded"
)

var (
	rootDir  = flag.String("root", ".", "项目根目录")
	filePath = flag.String("file", config.DefaultOutlineConfigPath, "配置文件路径（data/ 开头）")
	checkAll = flag.Bool("all", false, "校验 data/ 下所有 .yaml 文件")
)

func main() {
	flag.Parse()

	embedded.Init(os.DirFS(*rootDir))

	files := []string{*filePath}
	if *checkAll {
		var err error
		files, err = listYAMLFiles("data")
		if err != nil {
			fmt.Printf("❌ 读取目录失败: %v\n", err)
			os.Exit(1)
		}
	}

	failed := 0
	for _, f := range files {
		if !validateFile(f) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("\n❌ %d/%d 个文件未通过校验\n", failed, len(files))
		os.Exit(1)
	}
}

// listYAMLFiles 列出目录下的 .yaml 文件
func listYAMLFiles(dir string) ([]string, error) {
	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	return files, nil
}

// validateFile 校验单个文件并打印摘要
func validateFile(file string) bool {
	fmt.Printf("📄 %s\n", file)

	if !embedded.Exists(file) {
		fmt.Printf("❌ 文件不存在: %s\n", file)
		return false
	}

	cfg, err := config.LoadOutlineConfig(file)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		return false
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 轮廓槽位: %d, 淡入淡出时长: %v, 透明度: %.0f -> %.0f, 插值: %s\n",
		cfg.Outline.Count, cfg.Outline.FadeDuration(), cfg.Outline.FromAlpha, cfg.Outline.MaxAlpha,
		cfg.Outline.Interpolator)
	fmt.Printf("✅ 网格: %d × %d, 单元格 %d × %d, 原点 (%d, %d)\n",
		cfg.Grid.Columns, cfg.Grid.Rows, cfg.Grid.CellWidth, cfg.Grid.CellHeight,
		cfg.Grid.OriginX, cfg.Grid.OriginY)

	last := cfg.Grid.CellRect(cfg.Grid.Columns-1, cfg.Grid.Rows-1)
	if last.Max.X > config.GameWindowWidth || last.Max.Y > config.GameWindowHeight {
		fmt.Printf("⚠️  网格超出窗口 %d × %d (右下角 %v)\n",
			config.GameWindowWidth, config.GameWindowHeight, last.Max)
	}
	return true
}
