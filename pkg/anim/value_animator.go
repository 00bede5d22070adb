// Package anim 提供帧驱动的数值动画
//
// ValueAnimator 是底层的时间驱动插值引擎：在给定时长内把一个 float64
// 从起始值插值到结束值，由宿主帧循环（ebiten Update）逐帧推进。
// InOutAnimator 在其之上实现可中途反向的淡入/淡出过渡。
//
// 本包不是并发安全的，所有调用必须发生在同一个帧循环 goroutine 上。
package anim

import (
	"time"

	"github.com/decker502/inoutanim/pkg/utils"
)

// AnimatorListener 动画生命周期回调
type AnimatorListener func(a *ValueAnimator)

// ValueAnimator 时间驱动的数值插值引擎
//
// 生命周期：
//   - Start() 从播放时间 0 开始，立即应用起始值
//   - Update(dt) 逐帧推进，播放时间达到时长后自然结束并触发 end 回调
//   - Cancel() 立即停止，数值停留在当前位置，依次触发 cancel 和 end 回调
//   - End() 立即跳到结束值，触发 update 和 end 回调
type ValueAnimator struct {
	from     float64
	to       float64
	duration time.Duration

	interpolator utils.Interpolator

	// 当前播放周期内已播放的时间
	playTime time.Duration
	running  bool
	value    float64

	updateListeners []AnimatorListener
	endListeners    []AnimatorListener
	cancelListeners []AnimatorListener
}

// NewValueAnimator 创建数值动画引擎
//
// 参数：
//   - from: 起始值
//   - to: 结束值（可以小于 from）
//   - duration: 完整播放时长，负数按 0 处理
func NewValueAnimator(from, to float64, duration time.Duration) *ValueAnimator {
	va := &ValueAnimator{
		from:         from,
		to:           to,
		interpolator: utils.Linear,
		value:        from,
	}
	va.SetDuration(duration)
	return va
}

// SetFloatValues 设置插值区间，不影响播放状态
func (va *ValueAnimator) SetFloatValues(from, to float64) {
	va.from = from
	va.to = to
}

// FloatValues 返回当前插值区间
func (va *ValueAnimator) FloatValues() (from, to float64) {
	return va.from, va.to
}

// SetDuration 设置播放时长，负数按 0 处理
func (va *ValueAnimator) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	va.duration = d
}

// Duration 返回当前播放时长
func (va *ValueAnimator) Duration() time.Duration {
	return va.duration
}

// SetInterpolator 设置插值曲线，nil 表示线性
func (va *ValueAnimator) SetInterpolator(interp utils.Interpolator) {
	if interp == nil {
		interp = utils.Linear
	}
	va.interpolator = interp
}

// Interpolator 返回当前插值曲线
func (va *ValueAnimator) Interpolator() utils.Interpolator {
	return va.interpolator
}

// AddUpdateListener 注册数值更新回调，每次数值被应用后调用
func (va *ValueAnimator) AddUpdateListener(l AnimatorListener) {
	va.updateListeners = append(va.updateListeners, l)
}

// AddEndListener 注册结束回调（自然结束、Cancel、End 都会触发）
func (va *ValueAnimator) AddEndListener(l AnimatorListener) {
	va.endListeners = append(va.endListeners, l)
}

// AddCancelListener 注册取消回调，仅 Cancel 触发
func (va *ValueAnimator) AddCancelListener(l AnimatorListener) {
	va.cancelListeners = append(va.cancelListeners, l)
}

// RemoveAllListeners 移除所有回调
func (va *ValueAnimator) RemoveAllListeners() {
	va.updateListeners = nil
	va.endListeners = nil
	va.cancelListeners = nil
}

// Start 从头开始播放
// 起始值立即生效（update 回调同步触发）。
// 时长为 0 时数值直接为结束值，在下一次 Update 时结束。
func (va *ValueAnimator) Start() {
	va.running = true
	va.playTime = 0
	va.apply()
}

// Update 推进一帧
//
// 参数：
//   - dt: 帧间隔（秒）
func (va *ValueAnimator) Update(dt float64) {
	if !va.running {
		return
	}
	if dt > 0 {
		va.playTime += time.Duration(dt * float64(time.Second))
	}

	va.apply()

	// update 回调中可能调用了 Cancel
	if !va.running {
		return
	}

	if va.playTime >= va.duration {
		va.running = false
		va.playTime = 0
		va.notify(va.endListeners)
	}
}

// Cancel 立即停止播放，数值保持当前值
// 未在播放时无效果
func (va *ValueAnimator) Cancel() {
	if !va.running {
		return
	}
	va.running = false
	va.playTime = 0
	va.notify(va.cancelListeners)
	va.notify(va.endListeners)
}

// End 立即结束播放，数值跳到结束值
// 未在播放时会先开始再结束，与宿主动画框架的行为一致
func (va *ValueAnimator) End() {
	if !va.running {
		va.running = true
		va.playTime = 0
	}
	va.value = va.to
	va.notify(va.updateListeners)

	// update 回调中调用了 Cancel 时 end 回调已经触发过，不再重复
	if !va.running {
		return
	}
	va.running = false
	va.playTime = 0
	va.notify(va.endListeners)
}

// IsRunning 是否正在播放
func (va *ValueAnimator) IsRunning() bool {
	return va.running
}

// CurrentPlayTime 当前播放周期内已播放的时间，未播放时为 0
func (va *ValueAnimator) CurrentPlayTime() time.Duration {
	if !va.running {
		return 0
	}
	return va.playTime
}

// AnimatedValue 最近一次应用的数值
func (va *ValueAnimator) AnimatedValue() float64 {
	return va.value
}

// AnimatedFraction 当前的线性播放进度 [0, 1]
func (va *ValueAnimator) AnimatedFraction() float64 {
	if va.duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(va.playTime) / float64(va.duration))
}

// apply 根据播放进度计算并应用数值
// 播放完成时直接取结束值，Lerp 在 t=1 处存在浮点误差
func (va *ValueAnimator) apply() {
	fraction := va.AnimatedFraction()
	if fraction >= 1 {
		va.value = va.to
	} else {
		va.value = utils.Lerp(va.from, va.to, va.interpolator(fraction))
	}
	va.notify(va.updateListeners)
}

// notify 依次调用回调，回调中注册的新回调本轮不触发
func (va *ValueAnimator) notify(listeners []AnimatorListener) {
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]AnimatorListener, len(listeners))
	copy(snapshot, listeners)
	for _, l := range snapshot {
		l(va)
	}
}
