// cmd/interpolator_showcase/main.go
// 插值曲线展示：每个单元格一条可中断的淡入/淡出进度条
//
// 用法：
//
//	go run ./cmd/interpolator_showcase --duration=1200
//
// 操作：
//   - 点击单元格：在淡入和淡出之间切换（播放中切换会从当前值反向）
//   - Space：全部切换
//   - E：全部立即结束
//   - C：全部取消
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/inoutanim/pkg/anim"
	"github.com/decker502/inoutanim/pkg/utils"
)

var (
	durationMs = flag.Int("duration", 1200, "完整淡入/淡出时长（毫秒）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

const (
	windowWidth  = 800
	windowHeight = 600
	columns      = 2
	cellWidth    = 380
	cellHeight   = 120
	padding      = 10
	topMargin    = 40
)

var (
	backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	cellColor       = color.RGBA{R: 50, G: 54, B: 70, A: 255}
	barColor        = color.RGBA{R: 110, G: 200, B: 140, A: 255}
)

// curveCell 一个插值曲线单元
type curveCell struct {
	name     string
	rect     image.Rectangle
	animator *anim.InOutAnimator
	// 下一次点击的方向
	nextIn bool
}

// Game 主游戏结构
type Game struct {
	cells []*curveCell
}

// NewGame 为每个插值曲线创建一个单元
func NewGame(duration time.Duration) *Game {
	g := &Game{}
	for i, name := range utils.InterpolatorNames() {
		interp, _ := utils.InterpolatorByName(name)

		a := anim.NewInOutAnimator(duration, 0, 1)
		a.Animator().SetInterpolator(interp)
		a.SetTag(name)

		col := i % columns
		row := i / columns
		x0 := padding + col*(cellWidth+padding)
		y0 := topMargin + row*(cellHeight+padding)

		g.cells = append(g.cells, &curveCell{
			name:     name,
			rect:     image.Rect(x0, y0, x0+cellWidth, y0+cellHeight),
			animator: a,
			nextIn:   true,
		})
	}
	log.Printf("✓ 创建 %d 个插值单元, 时长 %v", len(g.cells), duration)
	return g
}

// toggle 切换单元的方向
func (c *curveCell) toggle() {
	if c.nextIn {
		c.animator.AnimateIn()
	} else {
		c.animator.AnimateOut()
	}
	log.Printf("[%s] %v from %.2f, duration %v", c.name, c.animator.Direction(),
		c.animator.Value(), c.animator.Animator().Duration())
	c.nextIn = !c.nextIn
}

// Update 更新逻辑
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pt := image.Pt(ebiten.CursorPosition())
		for _, c := range g.cells {
			if pt.In(c.rect) {
				c.toggle()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		for _, c := range g.cells {
			c.toggle()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		for _, c := range g.cells {
			c.animator.End()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		for _, c := range g.cells {
			c.animator.Cancel()
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	for _, c := range g.cells {
		c.animator.Update(dt)
	}
	return nil
}

// Draw 绘制画面
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	ebitenutil.DebugPrint(screen, "click: toggle in/out  Space: toggle all  E: end all  C: cancel all")

	for _, c := range g.cells {
		r := c.rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), cellColor, false)

		barWidth := float32(c.animator.Value()) * float32(r.Dx()-20)
		vector.DrawFilledRect(screen, float32(r.Min.X+10), float32(r.Min.Y+50),
			barWidth, 30, barColor, true)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  %.3f  (%v)",
			c.name, c.animator.Direction(), c.animator.Value(), c.animator.Animator().Duration()),
			r.Min.X+10, r.Min.Y+10)
	}
}

// Layout 返回逻辑屏幕尺寸
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	game := NewGame(time.Duration(*durationMs) * time.Millisecond)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("插值曲线展示")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
