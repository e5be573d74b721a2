package ecosim

// 教育水平枚举（生成时等概率抽取）
var EducationLevels = []string{"None", "GCSE", "A-Level", "Undergraduate", "Postgraduate"}

// 政治观点枚举
var PoliticalViews = []string{"Left", "Centre", "Right"}

// 文化偏好枚举
var CulturalPreferences = []string{"Traditional", "Modern", "Mixed"}

// Employment 就业状态
type Employment string

const (
	Employed   Employment = "Employed"   // 就业
	Unemployed Employment = "Unemployed" // 失业
)

// Sectors 行业列表，抽取时保持固定顺序
var Sectors = []string{
	"Retail",
	"Technology",
	"Manufacturing",
	"Healthcare",
	"Energy",
	"Finance",
	"Services",
}

// CompanyTypes 行业到企业类型的固定映射表
var CompanyTypes = map[string][]string{
	"Retail":        {"Supermarket", "Convenience Store", "Online Retailer", "Department Store"},
	"Technology":    {"Software", "Hardware", "Semiconductor", "AI", "Cloud Services"},
	"Manufacturing": {"Automobile", "Consumer Goods", "Industrial", "Chemicals"},
	"Healthcare":    {"Hospital", "Pharmaceutical", "Medical Equipment", "Biotech"},
	"Energy":        {"Oil & Gas", "Renewable", "Utilities", "Nuclear"},
	"Finance":       {"Bank", "Insurance", "Investment Firm", "Fintech"},
	"Services":      {"Consultancy", "Hospitality", "Transportation", "Retail Service"},
}

// 宏观指标名，同时作为宏观历史的键
const (
	MetricGDP          = "GDP"
	MetricPopulation   = "Population"
	MetricGDPPerCapita = "GDP per Capita"
	MetricDebtPctGDP   = "Debt % GDP"
	MetricDeficitPct   = "Deficit % GDP"
	MetricUnemployment = "Unemployment Rate (%)"
	MetricInflation    = "Inflation (%)"
)

const (
	initialInflationPct = 2       // 初始通胀（百分比）
	initialStockIndex   = 1000    // 股指初始值
	publicShare         = 0.2     // 企业上市概率
	employedShare       = 0.75    // 生成时就业概率
	govRevenueShare     = 0.1     // 政府收入占GDP比例（固定假设，未接入税率配置）
	rateStep            = 0.5     // 政策利率单步调整幅度（百分点）
	rateFloor           = 1.0     // 政策利率下限（百分比）
	stockPriceDivisor   = 1e6     // 股价 = 市值 / 1e6
	companySeedStride   = 1 << 20 // 企业随机流与个人随机流的种子间隔
)
