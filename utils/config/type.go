package config

// SpendingPercentages 政府各类支出占GDP的百分比
// 说明：八个固定支出类别，外部政策编辑器可整体替换
type SpendingPercentages struct {
	Healthcare     float64 `yaml:"healthcare"`     // 医疗
	Education      float64 `yaml:"education"`      // 教育
	Research       float64 `yaml:"research"`       // 科研
	Welfare        float64 `yaml:"welfare"`        // 福利
	Transportation float64 `yaml:"transportation"` // 交通
	Energy         float64 `yaml:"energy"`         // 能源
	Defence        float64 `yaml:"defence"`        // 国防
	Infrastructure float64 `yaml:"infrastructure"` // 基建
}

// Government 政府初始政策配置
type Government struct {
	CorporateTaxRate float64             `yaml:"corporate_tax_rate"` // 企业税率（百分比）
	SalesTaxRate     float64             `yaml:"sales_tax_rate"`     // 销售税率（百分比）
	Spending         SpendingPercentages `yaml:"spending"`           // 支出占GDP百分比
}

// CentralBank 央行初始配置
type CentralBank struct {
	InterestRate    float64 `yaml:"interest_rate"`    // 初始政策利率（百分比）
	InflationTarget float64 `yaml:"inflation_target"` // 通胀目标（百分比，静态）
}

// Economy 经济体生成配置
// 功能：定义初始人口与企业规模以及初始政策
type Economy struct {
	NumPeople    int         `yaml:"num_people"`    // 初始人口数
	NumCompanies int         `yaml:"num_companies"` // 初始企业数
	Government   Government  `yaml:"government"`    // 政府初始政策
	CentralBank  CentralBank `yaml:"central_bank"`  // 央行初始配置
}

// Control 模拟器控制配置
// 说明：控制模拟的月数与随机种子
type Control struct {
	Months int    `yaml:"months"` // 模拟总月数
	Seed   uint64 `yaml:"seed"`   // 随机种子
}

// Output 模拟结果输出配置（MongoDB）
// 说明：URI为空则禁用输出
type Output struct {
	URI string `yaml:"uri,omitempty"` // MongoDB连接字符串
	DB  string `yaml:"db,omitempty"`  // 数据库名
	Col string `yaml:"col,omitempty"` // 集合名
}

// Config YAML配置文件的根结构
type Config struct {
	Economy Economy `yaml:"economy"` // 经济体生成
	Control Control `yaml:"control"` // 模拟过程控制
	Output  Output  `yaml:"output"`  // 输出
}
