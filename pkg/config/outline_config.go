package config

import (
	"fmt"
	"image"
	"time"

	"github.com/decker502/inoutanim/pkg/embedded"
	"github.com/decker502/inoutanim/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 游戏窗口逻辑尺寸
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// DefaultOutlineConfigPath 默认配置文件路径（嵌入资源）
const DefaultOutlineConfigPath = "data/outline.yaml"

// OutlineConfig 拖拽轮廓配置文件的顶层结构
type OutlineConfig struct {
	Outline OutlineAnimConfig `yaml:"outline"`
	Grid    GridConfig        `yaml:"grid"`
}

// OutlineAnimConfig 拖拽轮廓淡入淡出配置
type OutlineAnimConfig struct {
	Count        int     `yaml:"count"`        // 轮廓槽位数量（循环使用）
	FadeTimeMs   int     `yaml:"fade_time_ms"` // 完整淡入/淡出时长（毫秒）
	FromAlpha    float64 `yaml:"from_alpha"`   // 淡出目标透明度
	MaxAlpha     float64 `yaml:"max_alpha"`    // 淡入目标透明度（0-255）
	Interpolator string  `yaml:"interpolator"` // 插值曲线名称，见 utils.InterpolatorByName
}

// GridConfig 单元格网格配置
type GridConfig struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	OriginX    int `yaml:"origin_x"` // 网格左上角屏幕坐标
	OriginY    int `yaml:"origin_y"`
}

// DefaultOutlineConfig 返回默认配置
func DefaultOutlineConfig() OutlineConfig {
	return OutlineConfig{
		Outline: OutlineAnimConfig{
			Count:        4,
			FadeTimeMs:   900,
			FromAlpha:    0,
			MaxAlpha:     128,
			Interpolator: "deaccel_2_5",
		},
		Grid: GridConfig{
			Columns:    5,
			Rows:       4,
			CellWidth:  120,
			CellHeight: 120,
			OriginX:    40,
			OriginY:    60,
		},
	}
}

// LoadOutlineConfig 从嵌入资源加载配置
//
// 参数：
//   - path: 资源路径（如 "data/outline.yaml"）
//
// 返回：
//   - OutlineConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败
func LoadOutlineConfig(path string) (OutlineConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return OutlineConfig{}, fmt.Errorf("failed to read outline config %s: %w", path, err)
	}
	return ParseOutlineConfig(data)
}

// ParseOutlineConfig 解析 YAML 配置
// 在默认配置之上解码：文件中未出现的字段保留默认值，
// 显式写出的字段（包括 0）按原样使用并参与校验。
func ParseOutlineConfig(data []byte) (OutlineConfig, error) {
	cfg := DefaultOutlineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OutlineConfig{}, fmt.Errorf("failed to parse outline config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return OutlineConfig{}, err
	}
	return cfg, nil
}

// Validate 校验配置取值范围
func (c OutlineConfig) Validate() error {
	if c.Outline.Count < 1 {
		return fmt.Errorf("outline.count must be >= 1, got %d", c.Outline.Count)
	}
	if c.Outline.FadeTimeMs < 0 {
		return fmt.Errorf("outline.fade_time_ms must be >= 0, got %d", c.Outline.FadeTimeMs)
	}
	if _, ok := utils.InterpolatorByName(c.Outline.Interpolator); !ok {
		return fmt.Errorf("unknown outline.interpolator %q", c.Outline.Interpolator)
	}
	if c.Grid.Columns < 1 || c.Grid.Rows < 1 {
		return fmt.Errorf("grid must have at least 1 column and 1 row, got %dx%d", c.Grid.Columns, c.Grid.Rows)
	}
	if c.Grid.CellWidth < 1 || c.Grid.CellHeight < 1 {
		return fmt.Errorf("grid cell size must be positive, got %dx%d", c.Grid.CellWidth, c.Grid.CellHeight)
	}
	return nil
}

// FadeDuration 返回淡入/淡出时长
func (c OutlineAnimConfig) FadeDuration() time.Duration {
	return time.Duration(c.FadeTimeMs) * time.Millisecond
}

// InterpolatorFunc 返回配置的插值曲线，未知名称回退为线性
func (c OutlineAnimConfig) InterpolatorFunc() utils.Interpolator {
	if interp, ok := utils.InterpolatorByName(c.Interpolator); ok {
		return interp
	}
	return utils.Linear
}

// CellRect 返回单元格的屏幕矩形
func (g GridConfig) CellRect(cellX, cellY int) image.Rectangle {
	x0 := g.OriginX + cellX*g.CellWidth
	y0 := g.OriginY + cellY*g.CellHeight
	return image.Rect(x0, y0, x0+g.CellWidth, y0+g.CellHeight)
}

// PointToCell 将屏幕坐标转换为单元格坐标
//
// 返回：
//   - cellX, cellY: 单元格坐标
//   - ok: 坐标是否落在网格内
func (g GridConfig) PointToCell(px, py int) (cellX, cellY int, ok bool) {
	if px < g.OriginX || py < g.OriginY {
		return -1, -1, false
	}
	cellX = (px - g.OriginX) / g.CellWidth
	cellY = (py - g.OriginY) / g.CellHeight
	if cellX >= g.Columns || cellY >= g.Rows {
		return -1, -1, false
	}
	return cellX, cellY, true
}
