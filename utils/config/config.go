package config

import "gopkg.in/yaml.v2"

// RuntimeConfig 运行时配置
// 功能：在YAML配置的基础上补全默认值，为模拟运行提供有效配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 算法说明：
// 1. 规模默认值：人口100000、企业1000（与原型一致）
// 2. 政策默认值：企业税25%、销售税15%、八类支出表，利率5%、通胀目标2%
// 3. 控制默认值：未指定月数则模拟12个月
func NewRuntimeConfig(config Config) *RuntimeConfig {
	if config.Economy.NumPeople == 0 {
		config.Economy.NumPeople = 100000
	}
	if config.Economy.NumCompanies == 0 {
		config.Economy.NumCompanies = 1000
	}
	if config.Economy.Government == (Government{}) {
		config.Economy.Government = Government{
			CorporateTaxRate: 25,
			SalesTaxRate:     15,
			Spending: SpendingPercentages{
				Healthcare:     5,
				Education:      4,
				Research:       3,
				Welfare:        8,
				Transportation: 6,
				Energy:         4,
				Defence:        7,
				Infrastructure: 5,
			},
		}
	}
	if config.Economy.CentralBank == (CentralBank{}) {
		config.Economy.CentralBank = CentralBank{
			InterestRate:    5,
			InflationTarget: 2,
		}
	}
	if config.Control.Months == 0 {
		config.Control.Months = 12
	}

	rc := &RuntimeConfig{}
	rc.All = config
	rc.C = config.Control
	return rc
}

// Parse 解析YAML配置数据
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
