package components

import (
	"image"

	"github.com/decker502/inoutanim/pkg/anim"
)

// DragOutlineComponent 拖拽轮廓槽位
// 拖拽图标经过单元格时，在目标单元格上淡入一个半透明轮廓，
// 离开时淡出。多个槽位循环使用，使旧轮廓淡出的同时新轮廓可以淡入。
type DragOutlineComponent struct {
	// Index 槽位序号（在轮廓环中的位置）
	Index int

	// Animator 透明度淡入/淡出动画
	// Tag 为当前显示的单元格坐标（image.Point），淡出完成后清空
	Animator *anim.InOutAnimator

	// Alpha 当前透明度（0-255），由 Animator 的 update 回调写入
	Alpha float64

	// Rect 轮廓的屏幕矩形
	Rect image.Rectangle
}

// Cell 返回当前显示的单元格
// 槽位空闲（Tag 已清空）时 ok 为 false
func (c *DragOutlineComponent) Cell() (cell image.Point, ok bool) {
	if c.Animator == nil {
		return image.Point{}, false
	}
	cell, ok = c.Animator.Tag().(image.Point)
	return cell, ok
}
