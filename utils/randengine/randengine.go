// 随机数引擎，包装了golang.org/x/exp/rand，提供经济模拟所需的常用随机数生成方法
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 说明：基于golang.org/x/exp/rand库，必须显式指定种子，保证模拟结果可复现
type Engine struct {
	*rand.Rand
}

// New 创建随机数引擎
// 参数：seed-随机数种子（实际种子为seed+seedOffset）
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// UniformRange 在[low, high)范围内生成均匀分布的随机浮点数
func (e *Engine) UniformRange(low, high float64) float64 {
	return low + e.Float64()*(high-low)
}

// IntRange 在[low, high]范围内生成均匀分布的随机整数
func (e *Engine) IntRange(low, high int) int {
	return low + e.Intn(high-low+1)
}

// PTrue 以指定概率返回true
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// Choice 从字符串列表中均匀随机选取一项
func (e *Engine) Choice(items []string) string {
	return items[e.Intn(len(items))]
}

// DriftFactor 生成乘性漂移因子 1 + (U[0,1) - 0.005)
// 说明：收入、净资产、营收、市值、通胀的月度更新共用该噪声族
func (e *Engine) DriftFactor() float64 {
	return 1 + (e.Float64() - 0.005)
}
