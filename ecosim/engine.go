package ecosim

import (
	"fmt"
	"sync"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"

	"github.com/macrosim-lab/economy-sim-oss/utils"
	"github.com/macrosim-lab/economy-sim-oss/utils/container"
	"github.com/macrosim-lab/economy-sim-oss/utils/randengine"
)

// Policy 经济体初始政策
type Policy struct {
	CorporateTaxRate float64
	SalesTaxRate     float64
	Spending         SpendingPercentages
	InterestRate     float64
	InflationTarget  float64
}

// Engine 经济模拟引擎
// 功能：持有全部实体集合与聚合记录，提供初始化与按月推进两个入口，
// 以及供外部协作方使用的政策指令与只读快照
// 说明：每月推进为一次原子状态转移——先在栅栏下并行定格与更新实体，
// 再顺序执行宏观汇总、财政、货币、股指与历史追加
type Engine struct {
	seed      uint64
	generator *randengine.Engine // 引擎级随机流，用于通胀扰动

	policy Policy

	persons     []*Person
	personByID  map[int32]*Person
	companies   []*Company
	companyByID map[int32]*Company

	government *Government
	bank       *CentralBank
	market     *StockMarket
	public     []*Company // 上市企业，成员生成后固定

	macro   MacroStats
	history *container.OrderedMap[string, []float64]

	initialized bool
	mu          sync.Mutex
}

// NewEngine 创建经济模拟引擎实例
func NewEngine(policy Policy, seed uint64) *Engine {
	return &Engine{
		seed:      seed,
		generator: randengine.New(seed),
		policy:    policy,
	}
}

// Init 初始化经济体：生成numPeople个个人与numCompanies个企业
// 参数为负时返回InvalidPopulation错误且不产生任何状态
// 说明：规模为0是合法的退化情形，所有除法按策略取0
func (e *Engine) Init(numPeople, numCompanies int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if numPeople < 0 || numCompanies < 0 {
		return newSimError(InvalidPopulation, "population %d and company count %d must be non-negative", numPeople, numCompanies)
	}

	e.persons = parallel.GoMap(lo.RangeFrom(int32(1), numPeople), func(id int32) *Person {
		return generatePerson(id, e.seed)
	})
	e.companies = parallel.GoMap(lo.RangeFrom(int32(1), numCompanies), func(id int32) *Company {
		return generateCompany(id, e.seed)
	})
	e.personByID = lo.SliceToMap(e.persons, func(p *Person) (int32, *Person) { return p.id, p })
	e.companyByID = lo.SliceToMap(e.companies, func(c *Company) (int32, *Company) { return c.id, c })

	e.government = NewGovernment(e.policy.CorporateTaxRate, e.policy.SalesTaxRate, e.policy.Spending)
	e.bank = NewCentralBank(e.policy.InterestRate, e.policy.InflationTarget)

	e.public = lo.Filter(e.companies, func(c *Company, _ int) bool { return c.attr.Public })
	publicIDs := lo.Map(e.public, func(c *Company, _ int) int32 { return c.id })
	e.market = NewStockMarket(publicIDs, initialStockIndex)
	if len(e.public) == 0 && numCompanies > 0 {
		log.Warnf("no public company among %d companies, stock index degenerates to 0", numCompanies)
	}

	e.macro = aggregateMacro(e.persons, e.companies, 0, 0, initialInflationPct)
	e.history = newMacroHistory(e.macro)
	e.initialized = true

	log.Infof("Person: %v", len(e.persons))
	log.Infof("Company: %v (public: %v)", len(e.companies), len(e.public))
	return nil
}

// month 当前月序号 = GDP历史长度
func (e *Engine) month() int32 {
	series, _ := e.history.Get(MetricGDP)
	return int32(len(series))
}

// AdvanceMonth 推进一个模拟月并返回新快照
// 算法说明（顺序固定）：
// 1. 并行prepare：所有实体定格上月数据（栅栏）
// 2. 并行update：个人与企业各自独立推进（个人与企业两个集合并发执行）
// 3. 宏观汇总：通胀按漂移族扰动后装配MacroStats，
//    债务/赤字比率取上月财政结果的结转值
// 4. 财政步骤、5. 货币步骤、6. 股指步骤
// 7. 历史追加：每个指标追加本月值
// 转移要么完整发生要么不发生，失败时先前状态不变
func (e *Engine) AdvanceMonth() (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return nil, fmt.Errorf("economy is not initialized")
	}

	// Prepare
	parallel.GoFor(e.persons, func(p *Person) { p.prepare() })
	parallel.GoFor(e.companies, func(c *Company) { c.prepare() })

	// Update
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		parallel.GoFor(e.persons, func(p *Person) { p.update() })
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		parallel.GoFor(e.companies, func(c *Company) { c.update() })
	}()
	wg.Wait()

	month := e.month() + 1
	inflation := e.macro.InflationPct * e.generator.DriftFactor()
	e.macro = aggregateMacro(e.persons, e.companies,
		e.government.debtPercentage, e.government.deficitPercentage, inflation)

	e.government.applyFiscal(e.macro.GDP)
	e.bank.applyMonetary(e.macro.InflationPct, month)
	e.market.applyIndex(e.public)
	appendMacroHistory(e.history, e.macro)

	log.Debugf("month %d: GDP=%s index=%.2f rate=%.2f%%",
		month, FormatCurrency(e.macro.GDP), e.market.index, e.bank.interestRate)
	return e.snapshotLocked(), nil
}

// Snapshot 导出当前状态的深拷贝快照
func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() *Snapshot {
	return &Snapshot{
		Persons:      parallel.GoMap(e.persons, func(p *Person) PersonState { return p.state() }),
		Companies:    parallel.GoMap(e.companies, func(c *Company) CompanyState { return c.state() }),
		Government:   e.government.state(),
		CentralBank:  e.bank.state(),
		StockMarket:  e.market.state(e.public),
		Macro:        e.macro,
		MacroHistory: cloneMacroHistory(e.history),
	}
}

// Restore 从快照重建引擎状态（断点续跑）
// 说明：实体随机流按种子+ID重建，流位置不保留，
// 因此恢复后的序列与不中断的序列不逐位一致，但分布与结构不变
func (e *Engine) Restore(snap *Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	e.persons = parallel.GoMap(snap.Persons, func(st PersonState) *Person {
		return newPersonFromState(st, e.seed)
	})
	e.companies = parallel.GoMap(snap.Companies, func(st CompanyState) *Company {
		return newCompanyFromState(st, e.seed)
	})
	e.personByID = lo.SliceToMap(e.persons, func(p *Person) (int32, *Person) { return p.id, p })
	e.companyByID = lo.SliceToMap(e.companies, func(c *Company) (int32, *Company) { return c.id, c })
	if len(e.personByID) != len(e.persons) || len(e.companyByID) != len(e.companies) {
		return fmt.Errorf("duplicate entity IDs in snapshot")
	}

	e.government = newGovernmentFromState(snap.Government)
	e.bank = newCentralBankFromState(snap.CentralBank)
	e.market = newStockMarketFromState(snap.StockMarket)
	public := make([]*Company, 0, len(snap.StockMarket.PublicCompanyIDs))
	for _, id := range snap.StockMarket.PublicCompanyIDs {
		c, ok := e.companyByID[id]
		if !ok {
			return fmt.Errorf("public company %d not found in snapshot", id)
		}
		public = append(public, c)
	}
	e.public = public

	e.macro = snap.Macro
	e.history = container.NewOrderedMap[string, []float64]()
	for _, series := range snap.MacroHistory {
		e.history.Set(series.Name, utils.CloneFloats(series.Values))
	}
	e.initialized = true
	return nil
}

// UpdateGovernmentPolicy 外部政策编辑指令：整体替换税率与支出表
func (e *Engine) UpdateGovernmentPolicy(corporateTaxRate, salesTaxRate float64, spending SpendingPercentages) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return fmt.Errorf("economy is not initialized")
	}
	e.government.SetPolicy(corporateTaxRate, salesTaxRate, spending)
	return nil
}

// AdjustInterestRate 外部调息指令：设定利率并追加历史样本
func (e *Engine) AdjustInterestRate(rate float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return fmt.Errorf("economy is not initialized")
	}
	e.bank.setRate(rate, e.month()+1)
	return nil
}

// InvestInCompany 个人向企业注资：净资产扣减、企业市值增加并刷新股价
func (e *Engine) InvestInCompany(personID, companyID int32, amount float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return fmt.Errorf("economy is not initialized")
	}
	p, ok := e.personByID[personID]
	if !ok {
		return fmt.Errorf("person %d not found", personID)
	}
	c, ok := e.companyByID[companyID]
	if !ok {
		return fmt.Errorf("company %d not found", companyID)
	}
	if amount < 0 || p.runtime.netWorth < amount {
		return fmt.Errorf("person %d cannot invest %f (net worth %f)", personID, amount, p.runtime.netWorth)
	}
	p.runtime.netWorth -= amount
	c.invest(amount)
	return nil
}

// Persons 按ID批量读取个人记录，ids为空则返回全部，缺失ID另行返回
func (e *Engine) Persons(ids []int32) ([]PersonState, []int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	found, failed := utils.Find(e.personByID, e.persons, ids)
	return lo.Map(found, func(p *Person, _ int) PersonState { return p.state() }), failed
}

// Companies 按ID批量读取企业记录，ids为空则返回全部，缺失ID另行返回
func (e *Engine) Companies(ids []int32) ([]CompanyState, []int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	found, failed := utils.Find(e.companyByID, e.companies, ids)
	return lo.Map(found, func(c *Company, _ int) CompanyState { return c.state() }), failed
}
