package ecosim

import "fmt"

// FormatCurrency 货币格式化：百万以上记mln、千以上记k
func FormatCurrency(n float64) string {
	if n >= 1e6 {
		return fmt.Sprintf("£%.2fmln", n/1e6)
	}
	if n >= 1e3 {
		return fmt.Sprintf("£%.2fk", n/1e3)
	}
	return fmt.Sprintf("£%.2f", n)
}

// ConsumptionFraction 按经济增长率估算消费占比
// 说明：衰退期多储蓄（0.70），繁荣期多消费（0.95），中间线性过渡
func ConsumptionFraction(economicGrowth float64) float64 {
	if economicGrowth < 0 {
		return 0.70
	}
	if economicGrowth > 0.02 {
		return 0.95
	}
	return 0.70 + economicGrowth/0.02*0.25
}
