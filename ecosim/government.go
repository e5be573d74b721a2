package ecosim

// SpendingPercentages 政府八类支出占GDP的百分比
// 说明：固定类别集合，外部政策编辑器整体替换
type SpendingPercentages struct {
	Healthcare     float64
	Education      float64
	Research       float64
	Welfare        float64
	Transportation float64
	Energy         float64
	Defence        float64
	Infrastructure float64
}

// Sum 各类支出百分比之和
func (s SpendingPercentages) Sum() float64 {
	return s.Healthcare + s.Education + s.Research + s.Welfare +
		s.Transportation + s.Energy + s.Defence + s.Infrastructure
}

// Government 政府实体
// 说明：税率与支出表由外部政策提供并原样保留，
// 债务率与赤字率由财政步骤每月重算
type Government struct {
	corporateTaxRate  float64             // 企业税率（百分比），暂未接入财政计算
	salesTaxRate      float64             // 销售税率（百分比），暂未接入财政计算
	spending          SpendingPercentages // 支出占GDP百分比
	debtPercentage    float64             // 债务占GDP百分比
	deficitPercentage float64             // 赤字占GDP百分比
}

// NewGovernment 创建政府实例
func NewGovernment(corporateTaxRate, salesTaxRate float64, spending SpendingPercentages) *Government {
	return &Government{
		corporateTaxRate: corporateTaxRate,
		salesTaxRate:     salesTaxRate,
		spending:         spending,
	}
}

// SetPolicy 整体替换外部政策字段，债务率与赤字率不受影响
func (g *Government) SetPolicy(corporateTaxRate, salesTaxRate float64, spending SpendingPercentages) {
	g.corporateTaxRate = corporateTaxRate
	g.salesTaxRate = salesTaxRate
	g.spending = spending
}

// applyFiscal 财政步骤：按本月GDP重算债务率与赤字率
// 算法说明：
// 1. 总支出 = GDP × 支出百分比之和（百分比按原始数值直接相乘，复现原型算术）
// 2. 政府收入 = GDP × 0.10（固定假设，不使用配置税率）
// 3. 赤字 = 总支出 - 政府收入
// 4. 新债务 = 上月债务率 × GDP + 赤字，下限0
// 5. 债务率 = 新债务/GDP×100，赤字率 = 赤字/GDP×100
// 边界：GDP为0时两个比率取0，与其他除法退化情形同策略
func (g *Government) applyFiscal(gdp float64) {
	if gdp == 0 {
		g.debtPercentage = 0
		g.deficitPercentage = 0
		return
	}
	totalSpending := gdp * g.spending.Sum()
	deficit := totalSpending - gdp*govRevenueShare
	newDebt := g.debtPercentage*gdp + deficit
	if newDebt < 0 {
		newDebt = 0
	}
	g.debtPercentage = newDebt / gdp * 100
	g.deficitPercentage = deficit / gdp * 100
}

// state 导出平面记录
func (g *Government) state() GovernmentState {
	return GovernmentState{
		CorporateTaxRate:  g.corporateTaxRate,
		SalesTaxRate:      g.salesTaxRate,
		Spending:          g.spending,
		DebtPercentage:    g.debtPercentage,
		DeficitPercentage: g.deficitPercentage,
	}
}

// newGovernmentFromState 从快照记录恢复政府实体
func newGovernmentFromState(st GovernmentState) *Government {
	return &Government{
		corporateTaxRate:  st.CorporateTaxRate,
		salesTaxRate:      st.SalesTaxRate,
		spending:          st.Spending,
		debtPercentage:    st.DebtPercentage,
		deficitPercentage: st.DeficitPercentage,
	}
}
