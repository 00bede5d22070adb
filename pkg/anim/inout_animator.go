package anim

import "time"

// Direction 过渡方向
type Direction int

const (
	// DirectionStopped 没有正在播放的过渡（初始状态，也是每轮过渡的终止状态）
	DirectionStopped Direction = iota
	// DirectionIn 朝 toValue 播放
	DirectionIn
	// DirectionOut 朝 fromValue 播放
	DirectionOut
)

// String 返回方向名称（用于日志）
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "stopped"
	}
}

// InOutAnimator 可中断的淡入/淡出动画
//
// 在 [fromValue, toValue] 之间来回播放。正在播放时调用相反方向，
// 会从当前数值开始反向，时长按上一段已播放的时间相应缩短，
// 而不是从端点重新播放完整时长。
//
// 每个需要动画的 UI 属性持有一个实例，实例独占一个 ValueAnimator。
type InOutAnimator struct {
	originalDuration  time.Duration
	originalFromValue float64
	originalToValue   float64

	animator *ValueAnimator

	// value 仅由引擎的 update 回调写入
	value float64

	firstRun  bool
	direction Direction

	tag any
}

// NewInOutAnimator 创建淡入/淡出动画
//
// 参数：
//   - duration: 完整从一端到另一端的时长（调用方保证非负）
//   - fromValue: 起始端（Out 方向的目标）
//   - toValue: 结束端（In 方向的目标）
func NewInOutAnimator(duration time.Duration, fromValue, toValue float64) *InOutAnimator {
	a := &InOutAnimator{
		originalDuration:  duration,
		originalFromValue: fromValue,
		originalToValue:   toValue,
		value:             fromValue,
		firstRun:          true,
		direction:         DirectionStopped,
	}

	a.animator = NewValueAnimator(fromValue, toValue, duration)
	a.animator.AddUpdateListener(func(va *ValueAnimator) {
		a.value = va.AnimatedValue()
	})
	a.animator.AddEndListener(func(*ValueAnimator) {
		a.direction = DirectionStopped
	})

	return a
}

// animate 朝指定方向开始过渡
func (a *InOutAnimator) animate(direction Direction) {
	currentPlayTime := a.animator.CurrentPlayTime()
	toValue := a.originalFromValue
	if direction == DirectionIn {
		toValue = a.originalToValue
	}
	startValue := a.value
	if a.firstRun {
		startValue = a.originalFromValue
	}

	// 修改参数前必须先停止
	a.Cancel()

	// startValue == toValue 时也完整走一遍引擎的开始/结束流程，
	// 调用方依赖结束回调做清理
	a.direction = direction

	duration := a.originalDuration - currentPlayTime
	if duration > a.originalDuration {
		duration = a.originalDuration
	}
	if duration < 0 {
		duration = 0
	}
	a.animator.SetDuration(duration)

	a.animator.SetFloatValues(startValue, toValue)
	a.animator.Start()
	a.firstRun = false
}

// AnimateIn 朝 toValue 播放
// 如果正在朝反方向播放，则从当前值反向，时长相应缩短。
func (a *InOutAnimator) AnimateIn() {
	a.animate(DirectionIn)
}

// AnimateOut 朝 fromValue 播放
// 使用与 AnimateIn 相同的插值曲线（而不是镜像曲线）。
// 如果正在朝反方向播放，则从当前值反向，时长相应缩短。
func (a *InOutAnimator) AnimateOut() {
	a.animate(DirectionOut)
}

// Cancel 立即停止，数值停留在当前位置
func (a *InOutAnimator) Cancel() {
	a.animator.Cancel()
	a.direction = DirectionStopped
}

// End 立即结束，数值跳到当前方向的目标端
func (a *InOutAnimator) End() {
	a.animator.End()
	a.direction = DirectionStopped
}

// IsStopped 没有正在播放的过渡时返回 true（包括从未开始过）
func (a *InOutAnimator) IsStopped() bool {
	return a.direction == DirectionStopped
}

// Direction 返回当前过渡方向
func (a *InOutAnimator) Direction() Direction {
	return a.direction
}

// Value 返回当前数值
func (a *InOutAnimator) Value() float64 {
	return a.value
}

// Duration 返回完整过渡时长
func (a *InOutAnimator) Duration() time.Duration {
	return a.originalDuration
}

// Update 推进一帧，dt 单位为秒
func (a *InOutAnimator) Update(dt float64) {
	a.animator.Update(dt)
}

// SetTag 设置调用方自定义数据
func (a *InOutAnimator) SetTag(tag any) {
	a.tag = tag
}

// Tag 返回调用方自定义数据
func (a *InOutAnimator) Tag() any {
	return a.tag
}

// Animator 返回底层引擎，用于设置插值曲线或注册回调
func (a *InOutAnimator) Animator() *ValueAnimator {
	return a.animator
}
