package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/inoutanim/pkg/components"
	"github.com/decker502/inoutanim/pkg/config"
	"github.com/decker502/inoutanim/pkg/ecs"
)

// 轮廓颜色（不含透明度）
var outlineBaseColor = color.NRGBA{R: 255, G: 255, B: 255}

// 网格线颜色
var gridLineColor = color.NRGBA{R: 90, G: 110, B: 140, A: 255}

// DragOutlineRenderSystem 绘制拖拽轮廓和网格
type DragOutlineRenderSystem struct {
	entityManager *ecs.EntityManager
	grid          config.GridConfig
}

// NewDragOutlineRenderSystem 创建轮廓渲染系统
func NewDragOutlineRenderSystem(em *ecs.EntityManager, grid config.GridConfig) *DragOutlineRenderSystem {
	return &DragOutlineRenderSystem{
		entityManager: em,
		grid:          grid,
	}
}

// VisibleOutlines 返回需要绘制的轮廓（Alpha > 0 且仍绑定单元格）
func (rs *DragOutlineRenderSystem) VisibleOutlines() []*components.DragOutlineComponent {
	var visible []*components.DragOutlineComponent
	for _, id := range ecs.GetEntitiesWith1[*components.DragOutlineComponent](rs.entityManager) {
		comp, _ := ecs.GetComponent[*components.DragOutlineComponent](rs.entityManager, id)
		if comp.Alpha <= 0 {
			continue
		}
		if _, ok := comp.Cell(); !ok {
			continue
		}
		visible = append(visible, comp)
	}
	return visible
}

// outlineColor 将 0-255 的透明度转换为颜色（四舍五入）
func outlineColor(alpha float64) color.NRGBA {
	a := alpha + 0.5
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	c := outlineBaseColor
	c.A = uint8(a)
	return c
}

// Draw 绘制所有可见轮廓
func (rs *DragOutlineRenderSystem) Draw(screen *ebiten.Image) {
	for _, comp := range rs.VisibleOutlines() {
		r := comp.Rect
		clr := outlineColor(comp.Alpha)
		vector.DrawFilledRect(screen,
			float32(r.Min.X)+4, float32(r.Min.Y)+4,
			float32(r.Dx())-8, float32(r.Dy())-8,
			clr, true)
	}
}

// DrawGrid 绘制单元格网格线
func (rs *DragOutlineRenderSystem) DrawGrid(screen *ebiten.Image) {
	for y := 0; y < rs.grid.Rows; y++ {
		for x := 0; x < rs.grid.Columns; x++ {
			r := rs.grid.CellRect(x, y)
			vector.StrokeRect(screen,
				float32(r.Min.X), float32(r.Min.Y),
				float32(r.Dx()), float32(r.Dy()),
				1, gridLineColor, false)
		}
	}
}
