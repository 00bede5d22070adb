// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/inoutanim/pkg/config"
	"github.com/decker502/inoutanim/pkg/ecs"
	"github.com/decker502/inoutanim/pkg/embedded"
	"github.com/decker502/inoutanim/pkg/game"
	"github.com/decker502/inoutanim/pkg/systems"
)

// 慢放时的动画速度倍率
const slowMotionSpeed = 0.25

// gdata 存储使用的应用名
const appName = "inoutanim"

var backgroundColor = color.RGBA{R: 30, G: 36, B: 48, A: 255}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 轮廓配置文件路径（嵌入资源），为空使用默认路径
	ConfigPath string
	// Outline 直接指定轮廓配置，非 nil 时忽略 ConfigPath
	Outline *config.OutlineConfig
	// DisablePersistence 不使用 gdata 持久化设置（仅内存）
	DisablePersistence bool
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	outlineSystem *systems.DragOutlineSystem
	renderSystem  *systems.DragOutlineRenderSystem
	settings      *game.SettingsManager
	grid          config.GridConfig

	dragging bool
	verbose  bool
}

// NewApp 创建并初始化应用
//
// 从嵌入资源加载配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	var outlineCfg config.OutlineConfig
	if cfg.Outline != nil {
		if err := cfg.Outline.Validate(); err != nil {
			return nil, fmt.Errorf("轮廓配置无效: %w", err)
		}
		outlineCfg = *cfg.Outline
	} else {
		path := cfg.ConfigPath
		if path == "" {
			path = config.DefaultOutlineConfigPath
		}
		if !embedded.IsInitialized() {
			return nil, fmt.Errorf("嵌入资源未初始化，无法加载 %s", path)
		}
		if !embedded.Exists(path) {
			return nil, fmt.Errorf("轮廓配置文件不存在: %s", path)
		}
		loaded, err := config.LoadOutlineConfig(path)
		if err != nil {
			return nil, fmt.Errorf("轮廓配置加载失败: %w", err)
		}
		outlineCfg = loaded
		log.Printf("[Config] 加载轮廓配置: %s", path)
	}

	var gdataManager *gdata.Manager
	if !cfg.DisablePersistence {
		m, err := gdata.Open(gdata.Config{AppName: appName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		} else {
			gdataManager = m
		}
	}
	settings := game.NewSettingsManager(gdataManager)

	em := ecs.NewEntityManager()
	outlineSystem := systems.NewDragOutlineSystem(em, outlineCfg)
	outlineSystem.SetTimeScale(settings.GetSettings().AnimationSpeed)

	log.Printf("[App] Initialized: grid %dx%d, %d outline slots",
		outlineCfg.Grid.Columns, outlineCfg.Grid.Rows, outlineCfg.Outline.Count)

	return &App{
		entityManager: em,
		outlineSystem: outlineSystem,
		renderSystem:  systems.NewDragOutlineRenderSystem(em, outlineCfg.Grid),
		settings:      settings,
		grid:          outlineCfg.Grid,
		verbose:       cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.ToggleSlowMotion()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.ResetOutlines()
	}

	x, y := ebiten.CursorPosition()
	a.HandlePointer(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	a.outlineSystem.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// HandlePointer 处理指针状态
// 按下并位于网格内视为拖拽经过该单元格；松开或移出网格视为拖拽离开。
func (a *App) HandlePointer(x, y int, pressed bool) {
	cellX, cellY, inGrid := a.grid.PointToCell(x, y)

	if pressed && inGrid {
		a.dragging = true
		a.outlineSystem.VisualizeDropLocation(cellX, cellY)
		return
	}

	if a.dragging {
		a.dragging = false
		a.outlineSystem.OnDragExit()
	}
}

// ToggleSlowMotion 在正常速度和慢放之间切换并保存设置
func (a *App) ToggleSlowMotion() {
	speed := 1.0
	if a.settings.GetSettings().AnimationSpeed == 1.0 {
		speed = slowMotionSpeed
	}
	a.settings.SetAnimationSpeed(speed)
	a.outlineSystem.SetTimeScale(a.settings.GetSettings().AnimationSpeed)
	a.saveSettings()
}

// ResetOutlines 清除所有轮廓，结束当前拖拽
func (a *App) ResetOutlines() {
	a.dragging = false
	a.outlineSystem.Reset()
}

// ToggleGrid 切换网格线显示并保存设置
func (a *App) ToggleGrid() {
	a.settings.SetShowGrid(!a.settings.GetSettings().ShowGrid)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if a.settings.GetSettings().ShowGrid {
		a.renderSystem.DrawGrid(screen)
	}
	a.renderSystem.Draw(screen)

	cell := a.outlineSystem.DragCell()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"drag: hold left mouse  S: slow motion (x%.2f)  G: grid  R: reset\ncell: (%d, %d)  slot: %d",
		a.outlineSystem.TimeScale(), cell.X, cell.Y, a.outlineSystem.CurrentIndex()))
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// OutlineSystem 返回拖拽轮廓系统
func (a *App) OutlineSystem() *systems.DragOutlineSystem {
	return a.outlineSystem
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
