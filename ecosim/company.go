package ecosim

import (
	"fmt"
	"math"

	"github.com/macrosim-lab/economy-sim-oss/utils/randengine"
)

// CompanyAttributes 企业静态属性，生成后不随月度更新变化
type CompanyAttributes struct {
	Sector               string
	Name                 string
	CompanyType          string
	ProductPrice         float64
	Wage                 float64
	CostPerUnit          float64
	MarketingCostPerUnit float64
	ProductionCapacity   int
	PrivateInvestment    float64
	Public               bool // 是否上市，生成时确定且不再变化
}

// companyRuntime 企业运行时数据，每月重写
type companyRuntime struct {
	revenue    float64 // 营收
	profit     float64 // 利润
	employees  int32   // 员工数，下限1
	marketCap  float64 // 市值
	stockPrice float64 // 股价 = 市值/1e6
	innovation float64 // 创新得分[0,1]，单调不减
}

// Company 企业实体
// 说明：与Person相同的runtime/snapshot双缓冲；股价历史为追加序列，
// 每月由update追加一次（含生成时的初始项），单写者无需缓冲
type Company struct {
	id   int32
	attr CompanyAttributes

	generator *randengine.Engine // 随机数生成器，以种子+企业种子间隔+ID初始化

	runtime  companyRuntime // 运行时数据
	snapshot companyRuntime // 快照

	stockHistory []float64 // 股价历史，每月一项
}

// generateCompany 生成一个企业实体
// 算法说明：行业在七个行业中等概率抽取，类型在该行业的类型表中等概率抽取；
// 产品价格[10,100)、营收[100000,5000000)、利润率[0.05,0.20)、
// 员工[10,200]整数、市值=营收×[10,50)、以概率0.2标记上市
func generateCompany(id int32, seed uint64) *Company {
	g := randengine.New(seed + companySeedStride + uint64(id))
	c := &Company{
		id:        id,
		generator: g,
	}
	sector := g.Choice(Sectors)
	c.attr.Sector = sector
	c.attr.CompanyType = g.Choice(CompanyTypes[sector])
	c.attr.Name = fmt.Sprintf("%s Company %d", sector, id)
	c.attr.ProductPrice = g.UniformRange(10, 100)
	c.runtime.revenue = g.UniformRange(100000, 5000000)
	c.runtime.profit = c.runtime.revenue * g.UniformRange(0.05, 0.20)
	c.runtime.employees = int32(g.IntRange(10, 200))
	c.runtime.marketCap = c.runtime.revenue * g.UniformRange(10, 50)
	c.runtime.stockPrice = c.runtime.marketCap / stockPriceDivisor
	c.attr.Wage = g.UniformRange(1000, 5000)
	c.attr.CostPerUnit = g.UniformRange(5, 55)
	c.attr.MarketingCostPerUnit = g.UniformRange(1, 51)
	c.runtime.innovation = g.Float64()
	c.attr.ProductionCapacity = g.IntRange(1000, 10000)
	c.attr.PrivateInvestment = g.UniformRange(0, 100000)
	c.attr.Public = g.PTrue(publicShare)
	c.stockHistory = []float64{c.runtime.stockPrice}
	c.snapshot = c.runtime
	return c
}

// newCompanyFromState 从快照记录恢复企业实体
func newCompanyFromState(st CompanyState, seed uint64) *Company {
	c := &Company{
		id:        st.ID,
		generator: randengine.New(seed + companySeedStride + uint64(st.ID)),
		attr: CompanyAttributes{
			Sector:               st.Sector,
			Name:                 st.Name,
			CompanyType:          st.CompanyType,
			ProductPrice:         st.ProductPrice,
			Wage:                 st.Wage,
			CostPerUnit:          st.CostPerUnit,
			MarketingCostPerUnit: st.MarketingCostPerUnit,
			ProductionCapacity:   st.ProductionCapacity,
			PrivateInvestment:    st.PrivateInvestment,
			Public:               st.Public,
		},
	}
	c.runtime = companyRuntime{
		revenue:    st.Revenue,
		profit:     st.Profit,
		employees:  st.Employees,
		marketCap:  st.MarketCap,
		stockPrice: st.StockPrice,
		innovation: st.Innovation,
	}
	c.stockHistory = make([]float64, len(st.StockHistory))
	copy(c.stockHistory, st.StockHistory)
	c.snapshot = c.runtime
	return c
}

// ID 获取企业ID
func (c *Company) ID() int32 {
	return c.id
}

// prepare 准备阶段：定格上月数据
func (c *Company) prepare() {
	c.snapshot = c.runtime
}

// applyEmployeeDelta 应用员工增减，下限为1
func applyEmployeeDelta(employees, delta int32) int32 {
	if next := employees + delta; next > 1 {
		return next
	}
	return 1
}

// update 更新阶段：推进一个月
// 算法说明：抽取一个漂移因子同时作用于营收与市值（原型如此，刻意保留）；
// 利润按新营收重抽利润率[0.05,0.20)；员工数增减{-1,0,+1}等概率且下限1；
// 创新得分加U[0,0.01)并封顶1；向股价历史追加本月股价
func (c *Company) update() {
	s := c.snapshot
	factor := c.generator.DriftFactor()
	c.runtime.revenue = s.revenue * factor
	c.runtime.profit = c.runtime.revenue * c.generator.UniformRange(0.05, 0.20)
	c.runtime.employees = applyEmployeeDelta(s.employees, int32(c.generator.Intn(3))-1)
	c.runtime.marketCap = s.marketCap * factor
	c.runtime.stockPrice = c.runtime.marketCap / stockPriceDivisor
	c.runtime.innovation = math.Min(1, s.innovation+c.generator.Float64()*0.01)
	c.stockHistory = append(c.stockHistory, c.runtime.stockPrice)
}

// invest 注资：市值增加并刷新股价
// 说明：不追加股价历史，历史仍保持每月一项
func (c *Company) invest(amount float64) {
	c.runtime.marketCap += amount
	c.runtime.stockPrice = c.runtime.marketCap / stockPriceDivisor
}

// state 导出当前运行时数据的平面记录
func (c *Company) state() CompanyState {
	history := make([]float64, len(c.stockHistory))
	copy(history, c.stockHistory)
	return CompanyState{
		ID:                   c.id,
		Sector:               c.attr.Sector,
		Name:                 c.attr.Name,
		CompanyType:          c.attr.CompanyType,
		ProductPrice:         c.attr.ProductPrice,
		Wage:                 c.attr.Wage,
		CostPerUnit:          c.attr.CostPerUnit,
		MarketingCostPerUnit: c.attr.MarketingCostPerUnit,
		Revenue:              c.runtime.revenue,
		Profit:               c.runtime.profit,
		Employees:            c.runtime.employees,
		MarketCap:            c.runtime.marketCap,
		StockPrice:           c.runtime.stockPrice,
		StockHistory:         history,
		Innovation:           c.runtime.innovation,
		ProductionCapacity:   c.attr.ProductionCapacity,
		PrivateInvestment:    c.attr.PrivateInvestment,
		Public:               c.attr.Public,
	}
}
