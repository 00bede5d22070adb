package utils

import (
	"math"
	"sort"
)

// Interpolator 插值曲线（时间插值器）
//
// 输入为线性时间进度 t ∈ [0, 1]，返回插值后的进度。
// 返回值通常也在 [0, 1]，但允许超出（例如回弹曲线）。
// 参考：https://easings.net/
type Interpolator func(t float64) float64

// Linear 线性插值（匀速）
func Linear(t float64) float64 {
	return t
}

// DecelerateInterpolator 返回减速曲线：开始快，结束慢
// 公式：f(t) = 1 - (1-t)^(2*factor)
// factor = 1 时等价于二次方缓出
func DecelerateInterpolator(factor float64) Interpolator {
	if factor == 1.0 {
		return func(t float64) float64 {
			return 1 - (1-t)*(1-t)
		}
	}
	exp := 2 * factor
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exp)
	}
}

// AccelerateInterpolator 返回加速曲线：开始慢，结束快
// 公式：f(t) = t^(2*factor)
func AccelerateInterpolator(factor float64) Interpolator {
	if factor == 1.0 {
		return func(t float64) float64 {
			return t * t
		}
	}
	exp := 2 * factor
	return func(t float64) float64 {
		return math.Pow(t, exp)
	}
}

// AccelerateDecelerate 先加速后减速（余弦曲线）
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Deaccel2_5 拖拽轮廓淡入淡出使用的减速曲线（factor = 2.5，接近五次方缓出）
var Deaccel2_5 = DecelerateInterpolator(2.5)

// interpolatorsByName 配置文件中可用的插值器名称
var interpolatorsByName = map[string]Interpolator{
	"linear":                Linear,
	"decelerate":            DecelerateInterpolator(1.0),
	"deaccel_2_5":           Deaccel2_5,
	"accelerate":            AccelerateInterpolator(1.0),
	"accelerate_decelerate": AccelerateDecelerate,
	"ease_out_cubic":        EaseOutCubic,
	"ease_in_out_cubic":     EaseInOutCubic,
}

// InterpolatorByName 按配置名称查找插值器
// 空字符串视为 "linear"
//
// 返回:
//   - 插值器，未知名称时返回 nil
//   - 是否找到
func InterpolatorByName(name string) (Interpolator, bool) {
	if name == "" {
		return Linear, true
	}
	interp, ok := interpolatorsByName[name]
	return interp, ok
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// InterpolatorNames 返回所有可用的插值器名称（按字母序）
func InterpolatorNames() []string {
	names := make([]string, 0, len(interpolatorsByName))
	for name := range interpolatorsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
