package ecosim

// PersonState 个人的平面记录，供展示层只读消费
type PersonState struct {
	ID                     int32
	Age                    float64
	EducationLevel         string
	RiskTolerance          float64
	PoliticalView          string
	CrimeTendency          float64
	MigrationInterest      float64
	EnvironmentalAwareness float64
	CulturalPreference     string
	NetWorth               float64
	Income                 float64
	SavingsRate            float64
	SpendingRate           float64
	Employment             Employment
	JobSatisfaction        float64
	Skills                 Skills
}

// CompanyState 企业的平面记录
type CompanyState struct {
	ID                   int32
	Sector               string
	Name                 string
	CompanyType          string
	ProductPrice         float64
	Wage                 float64
	CostPerUnit          float64
	MarketingCostPerUnit float64
	Revenue              float64
	Profit               float64
	Employees            int32
	MarketCap            float64
	StockPrice           float64
	StockHistory         []float64
	Innovation           float64
	ProductionCapacity   int
	PrivateInvestment    float64
	Public               bool
}

// GovernmentState 政府的平面记录
type GovernmentState struct {
	CorporateTaxRate  float64
	SalesTaxRate      float64
	Spending          SpendingPercentages
	DebtPercentage    float64
	DeficitPercentage float64
}

// CentralBankState 央行的平面记录
type CentralBankState struct {
	InterestRate    float64
	InflationTarget float64
	History         []RatePoint
}

// StockMarketState 股票市场的平面记录
type StockMarketState struct {
	PublicCompanyIDs []int32
	PublicCompanies  []CompanyState
	Index            float64
	IndexHistory     []float64
}

// MetricSeries 宏观历史中单个指标的时间序列
type MetricSeries struct {
	Name   string
	Values []float64
}

// Snapshot 某一模拟时刻的完整经济状态
// 说明：全部为深拷贝的平面记录，与引擎内部状态隔离，
// 引擎推进后先前导出的快照保持有效且可独立检视
type Snapshot struct {
	Persons      []PersonState
	Companies    []CompanyState
	Government   GovernmentState
	CentralBank  CentralBankState
	StockMarket  StockMarketState
	Macro        MacroStats
	MacroHistory []MetricSeries
}

// Month 快照对应的月序号（宏观历史长度，初始快照为1）
func (s *Snapshot) Month() int32 {
	for _, series := range s.MacroHistory {
		if series.Name == MetricGDP {
			return int32(len(series.Values))
		}
	}
	return 0
}
