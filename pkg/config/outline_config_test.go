package config

import (
	"image"
	"math"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/inoutanim/pkg/embedded"
)

// TestParseOutlineConfig_Full 测试解析完整配置
func TestParseOutlineConfig_Full(t *testing.T) {
	data := []byte(`
outline:
  count: 3
  fade_time_ms: 500
  from_alpha: 10
  max_alpha: 200
  interpolator: linear
grid:
  columns: 6
  rows: 2
  cell_width: 80
  cell_height: 90
  origin_x: 5
  origin_y: 7
`)
	cfg, err := ParseOutlineConfig(data)
	if err != nil {
		t.Fatalf("ParseOutlineConfig failed: %v", err)
	}

	if cfg.Outline.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Outline.Count)
	}
	if cfg.Outline.FadeDuration() != 500*time.Millisecond {
		t.Errorf("FadeDuration() = %v, want 500ms", cfg.Outline.FadeDuration())
	}
	if cfg.Outline.FromAlpha != 10 || cfg.Outline.MaxAlpha != 200 {
		t.Errorf("alpha = (%v, %v), want (10, 200)", cfg.Outline.FromAlpha, cfg.Outline.MaxAlpha)
	}
	want := GridConfig{Columns: 6, Rows: 2, CellWidth: 80, CellHeight: 90, OriginX: 5, OriginY: 7}
	if cfg.Grid != want {
		t.Errorf("Grid = %+v, want %+v", cfg.Grid, want)
	}
}

// TestParseOutlineConfig_Defaults 测试未出现的字段保留默认值
func TestParseOutlineConfig_Defaults(t *testing.T) {
	cfg, err := ParseOutlineConfig([]byte("outline:\n  interpolator: decelerate\n"))
	if err != nil {
		t.Fatalf("ParseOutlineConfig failed: %v", err)
	}

	def := DefaultOutlineConfig()
	if cfg.Outline.Count != def.Outline.Count {
		t.Errorf("Count = %d, want %d", cfg.Outline.Count, def.Outline.Count)
	}
	if cfg.Outline.FadeTimeMs != def.Outline.FadeTimeMs {
		t.Errorf("FadeTimeMs = %d, want %d", cfg.Outline.FadeTimeMs, def.Outline.FadeTimeMs)
	}
	if cfg.Outline.MaxAlpha != def.Outline.MaxAlpha {
		t.Errorf("MaxAlpha = %v, want %v", cfg.Outline.MaxAlpha, def.Outline.MaxAlpha)
	}
	if cfg.Grid.Columns != def.Grid.Columns || cfg.Grid.Rows != def.Grid.Rows {
		t.Errorf("Grid = %dx%d, want %dx%d", cfg.Grid.Columns, cfg.Grid.Rows, def.Grid.Columns, def.Grid.Rows)
	}
	if cfg.Outline.Interpolator != "decelerate" {
		t.Errorf("Interpolator = %q, want decelerate", cfg.Outline.Interpolator)
	}
}

// TestParseOutlineConfig_Invalid 测试非法配置
func TestParseOutlineConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"YAML语法错误", "outline: [unclosed"},
		{"负数槽位", "outline:\n  count: -1\n"},
		{"负数时长", "outline:\n  fade_time_ms: -5\n"},
		{"未知插值器", "outline:\n  interpolator: bounce\n"},
		{"负数列数", "grid:\n  columns: -2\n"},
		{"负数单元格尺寸", "grid:\n  cell_width: -10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOutlineConfig([]byte(tt.data)); err == nil {
				t.Errorf("ParseOutlineConfig(%q) should fail", tt.data)
			}
		})
	}
}

// TestDefaultOutlineConfig_Valid 默认配置必须通过校验
func TestDefaultOutlineConfig_Valid(t *testing.T) {
	if err := DefaultOutlineConfig().Validate(); err != nil {
		t.Errorf("DefaultOutlineConfig().Validate() = %v", err)
	}
}

// TestInterpolatorFunc 测试插值器查找
func TestInterpolatorFunc(t *testing.T) {
	c := OutlineAnimConfig{Interpolator: "decelerate"}
	if got := c.InterpolatorFunc()(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("decelerate(0.5) = %v, want 0.75", got)
	}

	c.Interpolator = "no_such_curve"
	if got := c.InterpolatorFunc()(0.5); math.Abs(got-0.5) > 0.001 {
		t.Errorf("未知名称应回退为线性, f(0.5) = %v", got)
	}
}

// TestGridConfig_CellRect 测试单元格矩形计算
func TestGridConfig_CellRect(t *testing.T) {
	g := GridConfig{Columns: 5, Rows: 4, CellWidth: 120, CellHeight: 100, OriginX: 40, OriginY: 60}

	tests := []struct {
		name   string
		cx, cy int
		want   image.Rectangle
	}{
		{"左上角", 0, 0, image.Rect(40, 60, 160, 160)},
		{"第二列第三行", 1, 2, image.Rect(160, 260, 280, 360)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CellRect(tt.cx, tt.cy); got != tt.want {
				t.Errorf("CellRect(%d, %d) = %v, want %v", tt.cx, tt.cy, got, tt.want)
			}
		})
	}
}

// TestGridConfig_PointToCell 测试屏幕坐标到单元格的转换
func TestGridConfig_PointToCell(t *testing.T) {
	g := GridConfig{Columns: 5, Rows: 4, CellWidth: 120, CellHeight: 100, OriginX: 40, OriginY: 60}

	tests := []struct {
		name         string
		px, py       int
		wantX, wantY int
		wantOK       bool
	}{
		{"网格原点", 40, 60, 0, 0, true},
		{"单元格内部", 170, 275, 1, 2, true},
		{"右下角最后一格", 639, 459, 4, 3, true},
		{"网格左侧", 39, 100, -1, -1, false},
		{"网格上方", 100, 10, -1, -1, false},
		{"网格右侧", 640, 100, -1, -1, false},
		{"网格下方", 100, 460, -1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := g.PointToCell(tt.px, tt.py)
			if x != tt.wantX || y != tt.wantY || ok != tt.wantOK {
				t.Errorf("PointToCell(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.px, tt.py, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

// TestLoadOutlineConfig_ProjectFile 通过 embedded 加载项目中的配置文件
func TestLoadOutlineConfig_ProjectFile(t *testing.T) {
	data, err := os.ReadFile("../../data/outline.yaml")
	if err != nil {
		t.Skipf("project data file not available: %v", err)
	}
	embedded.Init(fstest.MapFS{
		DefaultOutlineConfigPath: {Data: data},
	})

	cfg, err := LoadOutlineConfig(DefaultOutlineConfigPath)
	if err != nil {
		t.Fatalf("LoadOutlineConfig failed: %v", err)
	}
	if cfg != DefaultOutlineConfig() {
		t.Errorf("data/outline.yaml = %+v, want defaults %+v", cfg, DefaultOutlineConfig())
	}

	if _, err := LoadOutlineConfig("data/missing.yaml"); err == nil {
		t.Error("LoadOutlineConfig should fail for missing file")
	}
}

// TestParseOutlineConfig_ExplicitZero 显式写出的 0 不会被默认值覆盖
func TestParseOutlineConfig_ExplicitZero(t *testing.T) {
	cfg, err := ParseOutlineConfig([]byte("outline:\n  fade_time_ms: 0\n  max_alpha: 0\n"))
	if err != nil {
		t.Fatalf("ParseOutlineConfig failed: %v", err)
	}
	if cfg.Outline.FadeDuration() != 0 {
		t.Errorf("FadeDuration() = %v, want 0", cfg.Outline.FadeDuration())
	}
	if cfg.Outline.MaxAlpha != 0 {
		t.Errorf("MaxAlpha = %v, want 0", cfg.Outline.MaxAlpha)
	}
	if cfg.Outline.Count != DefaultOutlineConfig().Outline.Count {
		t.Errorf("未出现的 count 应保留默认值, got %d", cfg.Outline.Count)
	}

	// 显式 0 同样参与校验
	if _, err := ParseOutlineConfig([]byte("outline:\n  count: 0\n")); err == nil {
		t.Error("count: 0 should fail validation")
	}
	if _, err := ParseOutlineConfig([]byte("grid:\n  rows: 0\n")); err == nil {
		t.Error("rows: 0 should fail validation")
	}
}

// TestParseOutlineConfig_Empty 空文件使用全部默认值
func TestParseOutlineConfig_Empty(t *testing.T) {
	cfg, err := ParseOutlineConfig(nil)
	if err != nil {
		t.Fatalf("ParseOutlineConfig failed: %v", err)
	}
	if cfg != DefaultOutlineConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
