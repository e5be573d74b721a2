package task

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/macrosim-lab/economy-sim-oss/clock"
	"github.com/macrosim-lab/economy-sim-oss/ecosim"
	"github.com/macrosim-lab/economy-sim-oss/utils/config"
	"github.com/macrosim-lab/economy-sim-oss/utils/output"
)

// log 任务模块的日志记录器
var log = logrus.WithField("module", "task")

// Context 模拟任务上下文
// 功能：包含一次模拟任务的所有变量和状态，没有任何全局可变容器；
// 外部协作方（展示层、政策编辑器）只通过本上下文的指令方法进入核心
type Context struct {

	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock

	// 经济模拟引擎
	engine *ecosim.Engine

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 宏观统计记录器
	recorder *output.Recorder
}

// NewContext 创建新的模拟任务上下文
// 功能：根据配置构建时钟、引擎与记录器
func NewContext(job string, c config.Config) *Context {
	rc := config.NewRuntimeConfig(c)
	ctx := &Context{
		job:           job,
		runtimeConfig: rc,
	}
	ctx.clock = clock.New(rc.C)
	ctx.engine = ecosim.NewEngine(policyFromConfig(rc.All.Economy), rc.C.Seed)
	ctx.recorder = output.NewRecorder(job, rc.All.Output)
	return ctx
}

// policyFromConfig 将YAML政策配置转换为引擎的政策记录
func policyFromConfig(eco config.Economy) ecosim.Policy {
	return ecosim.Policy{
		CorporateTaxRate: eco.Government.CorporateTaxRate,
		SalesTaxRate:     eco.Government.SalesTaxRate,
		Spending: ecosim.SpendingPercentages{
			Healthcare:     eco.Government.Spending.Healthcare,
			Education:      eco.Government.Spending.Education,
			Research:       eco.Government.Spending.Research,
			Welfare:        eco.Government.Spending.Welfare,
			Transportation: eco.Government.Spending.Transportation,
			Energy:         eco.Government.Spending.Energy,
			Defence:        eco.Government.Spending.Defence,
			Infrastructure: eco.Government.Spending.Infrastructure,
		},
		InterestRate:    eco.CentralBank.InterestRate,
		InflationTarget: eco.CentralBank.InflationTarget,
	}
}

// Engine 获取经济模拟引擎
func (ctx *Context) Engine() *ecosim.Engine {
	return ctx.engine
}

// Clock 获取时钟
func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

// RuntimeConfig 获取运行时配置
func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// InitializeEconomy 初始化经济体指令
// 说明：两个外部入口之一，生成初始人口与企业并记录初始快照
func (ctx *Context) InitializeEconomy() error {
	eco := ctx.runtimeConfig.All.Economy
	if err := ctx.engine.Init(eco.NumPeople, eco.NumCompanies); err != nil {
		return err
	}
	ctx.clock.Init()
	snap := ctx.engine.Snapshot()
	ctx.recorder.Record(ctx.clock.Month, snap.Macro)
	return nil
}

// AdvanceMonth 推进一个月指令
// 说明：两个外部入口之二，返回的新快照由调用方自行保留
func (ctx *Context) AdvanceMonth() (*ecosim.Snapshot, error) {
	snap, err := ctx.engine.AdvanceMonth()
	if err != nil {
		return nil, err
	}
	ctx.clock.Month++
	ctx.recorder.Record(ctx.clock.Month, snap.Macro)
	return snap, nil
}

// UpdateGovernmentPolicy 政策编辑指令，透传给引擎
func (ctx *Context) UpdateGovernmentPolicy(corporateTaxRate, salesTaxRate float64, spending ecosim.SpendingPercentages) error {
	return ctx.engine.UpdateGovernmentPolicy(corporateTaxRate, salesTaxRate, spending)
}

// AdjustInterestRate 调息指令，透传给引擎
func (ctx *Context) AdjustInterestRate(rate float64) error {
	return ctx.engine.AdjustInterestRate(rate)
}

// InvestInCompany 注资指令，透传给引擎
func (ctx *Context) InvestInCompany(personID, companyID int32, amount float64) error {
	return ctx.engine.InvestInCompany(personID, companyID, amount)
}

// Close 结束任务
func (ctx *Context) Close() {
	if ctx.closed.Load() {
		return
	}
	ctx.recorder.Close()
	ctx.closed.Store(true)
}
