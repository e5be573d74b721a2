package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrosim-lab/economy-sim-oss/utils/config"
)

func TestParse(t *testing.T) {
	data := []byte(`
economy:
  num_people: 500
  num_companies: 50
  government:
    corporate_tax_rate: 30
    sales_tax_rate: 20
    spending:
      healthcare: 6
      education: 5
  central_bank:
    interest_rate: 4
    inflation_target: 3
control:
  months: 24
  seed: 7
output:
  uri: mongodb://localhost:27017
  db: economy
  col: macro
`)
	c, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 500, c.Economy.NumPeople)
	assert.Equal(t, 50, c.Economy.NumCompanies)
	assert.Equal(t, 30.0, c.Economy.Government.CorporateTaxRate)
	assert.Equal(t, 6.0, c.Economy.Government.Spending.Healthcare)
	assert.Equal(t, 0.0, c.Economy.Government.Spending.Defence)
	assert.Equal(t, 4.0, c.Economy.CentralBank.InterestRate)
	assert.Equal(t, 24, c.Control.Months)
	assert.Equal(t, uint64(7), c.Control.Seed)
	assert.Equal(t, "economy", c.Output.DB)
}

func TestParseBadYAML(t *testing.T) {
	_, err := config.Parse([]byte("economy: [unclosed"))
	assert.Error(t, err)
}

func TestNewRuntimeConfigDefaults(t *testing.T) {
	rc := config.NewRuntimeConfig(config.Config{})

	assert.Equal(t, 100000, rc.All.Economy.NumPeople)
	assert.Equal(t, 1000, rc.All.Economy.NumCompanies)
	assert.Equal(t, 25.0, rc.All.Economy.Government.CorporateTaxRate)
	assert.Equal(t, 15.0, rc.All.Economy.Government.SalesTaxRate)
	assert.Equal(t, config.SpendingPercentages{
		Healthcare:     5,
		Education:      4,
		Research:       3,
		Welfare:        8,
		Transportation: 6,
		Energy:         4,
		Defence:        7,
		Infrastructure: 5,
	}, rc.All.Economy.Government.Spending)
	assert.Equal(t, 5.0, rc.All.Economy.CentralBank.InterestRate)
	assert.Equal(t, 2.0, rc.All.Economy.CentralBank.InflationTarget)
	assert.Equal(t, 12, rc.C.Months)
}

func TestNewRuntimeConfigKeepsExplicitValues(t *testing.T) {
	c := config.Config{}
	c.Economy.NumPeople = 10
	c.Economy.Government.CorporateTaxRate = 1
	c.Control.Months = 3
	rc := config.NewRuntimeConfig(c)

	assert.Equal(t, 10, rc.All.Economy.NumPeople)
	assert.Equal(t, 1000, rc.All.Economy.NumCompanies)
	// 政府配置非零值时不再套用默认支出表
	assert.Equal(t, 1.0, rc.All.Economy.Government.CorporateTaxRate)
	assert.Equal(t, 0.0, rc.All.Economy.Government.Spending.Healthcare)
	assert.Equal(t, 3, rc.C.Months)
}
