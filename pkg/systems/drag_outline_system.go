package systems

import (
	"image"
	"log"

	"github.com/decker502/inoutanim/pkg/anim"
	"github.com/decker502/inoutanim/pkg/components"
	"github.com/decker502/inoutanim/pkg/config"
	"github.com/decker502/inoutanim/pkg/ecs"
)

// 动画速度倍率范围
const (
	MinTimeScale = 0.1
	MaxTimeScale = 10.0
)

// DragOutlineSystem 管理拖拽轮廓的淡入淡出。
// 轮廓槽位组成一个环：拖拽目标变化时，当前槽位淡出，
// 下一个槽位显示新目标并淡入。
type DragOutlineSystem struct {
	entityManager *ecs.EntityManager
	grid          config.GridConfig
	animCfg       config.OutlineAnimConfig
	fromAlpha     float64

	outlines []ecs.EntityID // 槽位序号 -> 实体ID
	current  int            // 当前槽位

	dragCell  image.Point // 当前拖拽目标单元格，(-1, -1) 表示无
	timeScale float64
}

// NewDragOutlineSystem 创建拖拽轮廓系统，并为每个槽位创建实体。
func NewDragOutlineSystem(em *ecs.EntityManager, cfg config.OutlineConfig) *DragOutlineSystem {
	ds := &DragOutlineSystem{
		entityManager: em,
		grid:          cfg.Grid,
		animCfg:       cfg.Outline,
		fromAlpha:     cfg.Outline.FromAlpha,
		dragCell:      image.Pt(-1, -1),
		timeScale:     1.0,
	}

	ds.createOutlines()

	log.Printf("[DragOutlineSystem] Created %d outline slots (fade %v, alpha %.0f -> %.0f, %s)",
		len(ds.outlines), cfg.Outline.FadeDuration(), cfg.Outline.FromAlpha, cfg.Outline.MaxAlpha, cfg.Outline.Interpolator)
	return ds
}

// createOutlines 按配置数量创建全部槽位
func (ds *DragOutlineSystem) createOutlines() {
	count := ds.animCfg.Count
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		ds.outlines = append(ds.outlines, ds.createOutline(i, ds.animCfg))
	}
}

// Reset 立即清除所有轮廓：销毁槽位实体并重新创建，
// 当前槽位回到 0，拖拽目标清空。
func (ds *DragOutlineSystem) Reset() {
	for i, id := range ds.outlines {
		if comp := ds.outline(i); comp != nil {
			// 先移除回调，避免取消时回写已销毁的组件
			comp.Animator.Animator().RemoveAllListeners()
			comp.Animator.Cancel()
		}
		ds.entityManager.DestroyEntity(id)
	}
	ds.entityManager.RemoveMarkedEntities()

	ds.outlines = ds.outlines[:0]
	ds.current = 0
	ds.dragCell = image.Pt(-1, -1)
	ds.createOutlines()

	log.Printf("[DragOutlineSystem] Reset: %d outline slots, %d entities alive",
		len(ds.outlines), ds.entityManager.EntityCount())
}

// createOutline 创建一个轮廓槽位实体
func (ds *DragOutlineSystem) createOutline(index int, cfg config.OutlineAnimConfig) ecs.EntityID {
	id := ds.entityManager.CreateEntity()

	a := anim.NewInOutAnimator(cfg.FadeDuration(), cfg.FromAlpha, cfg.MaxAlpha)
	a.Animator().SetInterpolator(cfg.InterpolatorFunc())

	comp := &components.DragOutlineComponent{
		Index:    index,
		Animator: a,
		Alpha:    cfg.FromAlpha,
	}

	a.Animator().AddUpdateListener(func(va *anim.ValueAnimator) {
		// 动画开始后很快被停止时，Tag 可能已被清空，此时仍可能收到更新
		if a.Tag() == nil {
			log.Printf("[DragOutlineSystem] outline %d update %.1f without cell, isStopped %v",
				index, va.AnimatedValue(), a.IsStopped())
			va.Cancel()
			return
		}
		comp.Alpha = va.AnimatedValue()
	})
	// 完全淡出后释放单元格
	a.Animator().AddEndListener(func(va *anim.ValueAnimator) {
		if va.AnimatedValue() == ds.fromAlpha {
			a.SetTag(nil)
		}
	})

	ecs.AddComponent(ds.entityManager, id, comp)
	return id
}

// outline 返回指定槽位的组件
func (ds *DragOutlineSystem) outline(index int) *components.DragOutlineComponent {
	comp, ok := ecs.GetComponent[*components.DragOutlineComponent](ds.entityManager, ds.outlines[index])
	if !ok {
		return nil
	}
	return comp
}

// VisualizeDropLocation 在指定单元格显示拖拽轮廓
// 单元格与当前目标相同时不做任何事。
func (ds *DragOutlineSystem) VisualizeDropLocation(cellX, cellY int) {
	cell := image.Pt(cellX, cellY)
	if cell == ds.dragCell {
		return
	}
	ds.dragCell = cell

	if old := ds.outline(ds.current); old != nil {
		old.Animator.AnimateOut()
	}
	ds.current = (ds.current + 1) % len(ds.outlines)

	next := ds.outline(ds.current)
	if next == nil {
		return
	}
	next.Rect = ds.grid.CellRect(cellX, cellY)
	next.Animator.SetTag(cell)
	next.Animator.AnimateIn()
}

// OnDragExit 拖拽离开网格（或拖拽结束）
func (ds *DragOutlineSystem) OnDragExit() {
	ds.dragCell = image.Pt(-1, -1)
	if cur := ds.outline(ds.current); cur != nil {
		cur.Animator.AnimateOut()
	}
	ds.current = (ds.current + 1) % len(ds.outlines)
}

// Update 推进所有轮廓动画
func (ds *DragOutlineSystem) Update(dt float64) {
	scaled := dt * ds.timeScale
	for _, id := range ecs.GetEntitiesWith1[*components.DragOutlineComponent](ds.entityManager) {
		comp, _ := ecs.GetComponent[*components.DragOutlineComponent](ds.entityManager, id)
		comp.Animator.Update(scaled)
	}
}

// SetTimeScale 设置动画速度倍率（< 1 为慢放）
// 限制在 [MinTimeScale, MaxTimeScale]
func (ds *DragOutlineSystem) SetTimeScale(scale float64) {
	if scale < MinTimeScale {
		scale = MinTimeScale
	}
	if scale > MaxTimeScale {
		scale = MaxTimeScale
	}
	ds.timeScale = scale
}

// TimeScale 返回动画速度倍率
func (ds *DragOutlineSystem) TimeScale() float64 {
	return ds.timeScale
}

// CurrentIndex 返回当前槽位序号
func (ds *DragOutlineSystem) CurrentIndex() int {
	return ds.current
}

// DragCell 返回当前拖拽目标单元格，(-1, -1) 表示无
func (ds *DragOutlineSystem) DragCell() image.Point {
	return ds.dragCell
}

// Outlines 返回所有槽位组件（按槽位序号）
func (ds *DragOutlineSystem) Outlines() []*components.DragOutlineComponent {
	result := make([]*components.DragOutlineComponent, 0, len(ds.outlines))
	for i := range ds.outlines {
		if comp := ds.outline(i); comp != nil {
			result = append(result, comp)
		}
	}
	return result
}
