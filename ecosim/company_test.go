package ecosim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEmployeeDelta(t *testing.T) {
	assert.Equal(t, int32(10), applyEmployeeDelta(9, 1))
	assert.Equal(t, int32(9), applyEmployeeDelta(9, 0))
	assert.Equal(t, int32(8), applyEmployeeDelta(9, -1))
	// 下限1：1人企业再裁员仍为1
	assert.Equal(t, int32(1), applyEmployeeDelta(1, -1))
	assert.Equal(t, int32(1), applyEmployeeDelta(1, 0))
	assert.Equal(t, int32(2), applyEmployeeDelta(1, 1))
}

func TestCompanyGeneration(t *testing.T) {
	for id := int32(1); id <= 50; id++ {
		c := generateCompany(id, 42)
		assert.Equal(t, id, c.ID())
		assert.Contains(t, Sectors, c.attr.Sector)
		assert.Contains(t, CompanyTypes[c.attr.Sector], c.attr.CompanyType)
		assert.GreaterOrEqual(t, c.attr.ProductPrice, 10.0)
		assert.Less(t, c.attr.ProductPrice, 100.0)
		assert.GreaterOrEqual(t, c.runtime.revenue, 100000.0)
		assert.Less(t, c.runtime.revenue, 5000000.0)
		assert.GreaterOrEqual(t, c.runtime.profit, c.runtime.revenue*0.05)
		assert.Less(t, c.runtime.profit, c.runtime.revenue*0.20)
		assert.GreaterOrEqual(t, c.runtime.employees, int32(10))
		assert.LessOrEqual(t, c.runtime.employees, int32(200))
		assert.GreaterOrEqual(t, c.runtime.marketCap, c.runtime.revenue*10)
		assert.Less(t, c.runtime.marketCap, c.runtime.revenue*50)
		assert.Equal(t, c.runtime.marketCap/1e6, c.runtime.stockPrice)
		assert.Equal(t, []float64{c.runtime.stockPrice}, c.stockHistory)
	}
}

func TestCompanyUpdateReusesRevenueFactor(t *testing.T) {
	c := generateCompany(7, 42)
	for month := 0; month < 24; month++ {
		prevRevenue := c.runtime.revenue
		prevCap := c.runtime.marketCap
		c.prepare()
		c.update()
		// 同一漂移因子作用于营收与市值（原型行为）
		revFactor := c.runtime.revenue / prevRevenue
		capFactor := c.runtime.marketCap / prevCap
		assert.InDelta(t, revFactor, capFactor, 1e-9)
		assert.Equal(t, c.runtime.marketCap/1e6, c.runtime.stockPrice)
	}
	// 24个月更新后历史为初始项+每月一项
	assert.Len(t, c.stockHistory, 25)
}

func TestCompanyInnovationRatchet(t *testing.T) {
	c := generateCompany(3, 42)
	prev := c.runtime.innovation
	for month := 0; month < 300; month++ {
		c.prepare()
		c.update()
		assert.GreaterOrEqual(t, c.runtime.innovation, prev)
		assert.LessOrEqual(t, c.runtime.innovation, 1.0)
		prev = c.runtime.innovation
	}
}

func TestCompanyInvest(t *testing.T) {
	c := generateCompany(5, 42)
	before := c.runtime.marketCap
	historyLen := len(c.stockHistory)
	c.invest(1000)
	assert.Equal(t, before+1000, c.runtime.marketCap)
	assert.Equal(t, c.runtime.marketCap/1e6, c.runtime.stockPrice)
	// 注资不追加股价历史
	assert.Len(t, c.stockHistory, historyLen)
}
