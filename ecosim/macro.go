package ecosim

import (
	"github.com/samber/lo"

	"github.com/macrosim-lab/economy-sim-oss/utils"
	"github.com/macrosim-lab/economy-sim-oss/utils/container"
)

// MacroStats 宏观经济统计，每月整体重算
type MacroStats struct {
	GDP              float64 // 国内生产总值 = 企业营收总和/10
	Population       float64 // 人口数
	GDPPerCapita     float64 // 人均GDP，人口为0时取0
	DebtPctGDP       float64 // 债务占GDP百分比（上月财政结果的结转值）
	DeficitPctGDP    float64 // 赤字占GDP百分比（上月财政结果的结转值）
	UnemploymentRate float64 // 失业率（百分比），人口为0时取0
	InflationPct     float64 // 通胀（百分比）
}

// aggregateMacro 宏观汇总步骤
// 说明：输入为本月已更新的实体集合、上月政府债务/赤字比率结转值
// 以及已应用本月扰动的通胀值；本函数只做装配，通胀扰动在编排器中完成
// 边界：人口为0时人均GDP与失业率按策略取0（EmptyPopulationDivision退化情形）
func aggregateMacro(persons []*Person, companies []*Company, debtPct, deficitPct, inflationPct float64) MacroStats {
	gdp := lo.SumBy(companies, func(c *Company) float64 { return c.runtime.revenue }) / 10
	population := float64(len(persons))
	stats := MacroStats{
		GDP:           gdp,
		Population:    population,
		DebtPctGDP:    debtPct,
		DeficitPctGDP: deficitPct,
		InflationPct:  inflationPct,
	}
	if population > 0 {
		unemployed := lo.CountBy(persons, func(p *Person) bool { return p.attr.Employment == Unemployed })
		stats.GDPPerCapita = gdp / population
		stats.UnemploymentRate = float64(unemployed) / population * 100
	}
	return stats
}

// metricValue 宏观指标键值对
type metricValue struct {
	name  string
	value float64
}

// metrics 按固定顺序展开各指标，顺序即宏观历史中指标的注册顺序
func (s MacroStats) metrics() []metricValue {
	return []metricValue{
		{MetricGDP, s.GDP},
		{MetricPopulation, s.Population},
		{MetricGDPPerCapita, s.GDPPerCapita},
		{MetricDebtPctGDP, s.DebtPctGDP},
		{MetricDeficitPct, s.DeficitPctGDP},
		{MetricUnemployment, s.UnemploymentRate},
		{MetricInflation, s.InflationPct},
	}
}

// newMacroHistory 以各指标的初始值建立宏观历史
func newMacroHistory(stats MacroStats) *container.OrderedMap[string, []float64] {
	history := container.NewOrderedMap[string, []float64]()
	for _, m := range stats.metrics() {
		history.Set(m.name, []float64{m.value})
	}
	return history
}

// appendMacroHistory 为每个指标追加本月值，新出现的指标另起序列
func appendMacroHistory(history *container.OrderedMap[string, []float64], stats MacroStats) {
	for _, m := range stats.metrics() {
		series, _ := history.Get(m.name)
		history.Set(m.name, append(series, m.value))
	}
}

// cloneMacroHistory 导出宏观历史的有序副本
func cloneMacroHistory(history *container.OrderedMap[string, []float64]) []MetricSeries {
	out := make([]MetricSeries, 0, history.Len())
	history.Range(func(name string, values []float64) bool {
		out = append(out, MetricSeries{Name: name, Values: utils.CloneFloats(values)})
		return true
	})
	return out
}
