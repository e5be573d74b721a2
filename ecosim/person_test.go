package ecosim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonGeneration(t *testing.T) {
	for id := int32(1); id <= 100; id++ {
		p := generatePerson(id, 42)
		assert.Equal(t, id, p.ID())
		assert.GreaterOrEqual(t, p.runtime.age, 18.0)
		assert.LessOrEqual(t, p.runtime.age, 64.0)
		assert.Contains(t, EducationLevels, p.attr.EducationLevel)
		assert.Contains(t, PoliticalViews, p.attr.PoliticalView)
		assert.Contains(t, CulturalPreferences, p.attr.CulturalPreference)
		assert.GreaterOrEqual(t, p.runtime.netWorth, 10000.0)
		assert.Less(t, p.runtime.netWorth, 910000.0)
		assert.GreaterOrEqual(t, p.runtime.income, 25000.0)
		assert.Less(t, p.runtime.income, 1000000.0)
		assert.GreaterOrEqual(t, p.attr.SavingsRate, 0.1)
		assert.Less(t, p.attr.SavingsRate, 0.5)
		assert.GreaterOrEqual(t, p.attr.SpendingRate, 0.3)
		assert.Less(t, p.attr.SpendingRate, 0.8)
		assert.Contains(t, []Employment{Employed, Unemployed}, p.attr.Employment)
		for _, skill := range []float64{
			p.attr.Skills.Business, p.attr.Skills.Tech,
			p.attr.Skills.Healthcare, p.attr.Skills.Manufacturing,
		} {
			assert.GreaterOrEqual(t, skill, 0.0)
			assert.Less(t, skill, 1.0)
		}
	}
}

func TestPersonGenerationDeterministic(t *testing.T) {
	a := generatePerson(9, 42)
	b := generatePerson(9, 42)
	assert.Equal(t, a.state(), b.state())

	c := generatePerson(9, 43)
	assert.NotEqual(t, a.state(), c.state())
}

func TestPersonUpdate(t *testing.T) {
	p := generatePerson(1, 42)
	age, income, netWorth := p.runtime.age, p.runtime.income, p.runtime.netWorth
	p.prepare()
	p.update()

	assert.InDelta(t, age+1.0/12, p.runtime.age, 1e-9)
	// 漂移因子在[0.995, 1.995)内，收入与净资产独立抽取
	assert.GreaterOrEqual(t, p.runtime.income, income*0.995)
	assert.Less(t, p.runtime.income, income*1.995)
	assert.GreaterOrEqual(t, p.runtime.netWorth, netWorth*0.995)
	assert.Less(t, p.runtime.netWorth, netWorth*1.995)
	// 其余字段本版本不变化
	assert.Equal(t, generatePerson(1, 42).attr, p.attr)
}

func TestPersonPrepareKeepsPriorSnapshot(t *testing.T) {
	p := generatePerson(2, 42)
	p.prepare()
	before := p.snapshot
	p.update()
	// update只写runtime，snapshot保持上月定格数据
	assert.Equal(t, before, p.snapshot)
	assert.NotEqual(t, before, p.runtime)
}
