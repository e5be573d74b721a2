package ecosim

import (
	"github.com/macrosim-lab/economy-sim-oss/utils/randengine"
)

// Skills 个人技能向量，四项得分均在[0,1]
type Skills struct {
	Business      float64
	Tech          float64
	Healthcare    float64
	Manufacturing float64
}

// PersonAttributes 个人静态属性，生成后不随月度更新变化
type PersonAttributes struct {
	EducationLevel         string
	RiskTolerance          float64
	PoliticalView          string
	CrimeTendency          float64
	MigrationInterest      float64
	EnvironmentalAwareness float64
	CulturalPreference     string
	SavingsRate            float64
	SpendingRate           float64
	Employment             Employment
	JobSatisfaction        float64
	Skills                 Skills
}

// personRuntime 个人运行时数据，每月重写
type personRuntime struct {
	age      float64 // 年龄（年）
	income   float64 // 收入
	netWorth float64 // 净资产
}

// Person 个人实体
// 说明：runtime为本月写入缓冲，snapshot为上月定格数据，
// prepare阶段在栅栏下复制runtime到snapshot，update阶段只读snapshot写runtime，
// 因此实体更新可以无序并行执行
type Person struct {
	id   int32
	attr PersonAttributes

	generator *randengine.Engine // 随机数生成器，以种子+ID初始化

	runtime  personRuntime // 运行时数据
	snapshot personRuntime // 快照
}

// generatePerson 生成一个个人实体
// 算法说明：各属性独立均匀抽取——年龄[18,64]整数、教育五档等概率、
// [0,1]特质、净资产[10000,910000)、收入[25000,1000000)、
// 储蓄率[0.1,0.5)、消费率[0.3,0.8)、就业概率0.75
func generatePerson(id int32, seed uint64) *Person {
	g := randengine.New(seed + uint64(id))
	p := &Person{
		id:        id,
		generator: g,
	}
	p.runtime.age = float64(g.IntRange(18, 64))
	p.attr.EducationLevel = g.Choice(EducationLevels)
	p.attr.RiskTolerance = g.Float64()
	p.attr.PoliticalView = g.Choice(PoliticalViews)
	p.attr.CrimeTendency = g.Float64()
	p.attr.MigrationInterest = g.Float64()
	p.attr.EnvironmentalAwareness = g.Float64()
	p.attr.CulturalPreference = g.Choice(CulturalPreferences)
	p.runtime.netWorth = g.UniformRange(10000, 910000)
	p.runtime.income = g.UniformRange(25000, 1000000)
	p.attr.SavingsRate = g.UniformRange(0.1, 0.5)
	p.attr.SpendingRate = g.UniformRange(0.3, 0.8)
	if g.PTrue(employedShare) {
		p.attr.Employment = Employed
	} else {
		p.attr.Employment = Unemployed
	}
	p.attr.JobSatisfaction = g.Float64()
	p.attr.Skills = Skills{
		Business:      g.Float64(),
		Tech:          g.Float64(),
		Healthcare:    g.Float64(),
		Manufacturing: g.Float64(),
	}
	p.snapshot = p.runtime
	return p
}

// newPersonFromState 从快照记录恢复个人实体
// 说明：随机流按种子+ID重建，流位置不保留
func newPersonFromState(st PersonState, seed uint64) *Person {
	p := &Person{
		id:        st.ID,
		generator: randengine.New(seed + uint64(st.ID)),
		attr: PersonAttributes{
			EducationLevel:         st.EducationLevel,
			RiskTolerance:          st.RiskTolerance,
			PoliticalView:          st.PoliticalView,
			CrimeTendency:          st.CrimeTendency,
			MigrationInterest:      st.MigrationInterest,
			EnvironmentalAwareness: st.EnvironmentalAwareness,
			CulturalPreference:     st.CulturalPreference,
			SavingsRate:            st.SavingsRate,
			SpendingRate:           st.SpendingRate,
			Employment:             st.Employment,
			JobSatisfaction:        st.JobSatisfaction,
			Skills:                 st.Skills,
		},
	}
	p.runtime = personRuntime{age: st.Age, income: st.Income, netWorth: st.NetWorth}
	p.snapshot = p.runtime
	return p
}

// ID 获取个人ID
func (p *Person) ID() int32 {
	return p.id
}

// prepare 准备阶段：定格上月数据
func (p *Person) prepare() {
	p.snapshot = p.runtime
}

// update 更新阶段：推进一个月
// 算法说明：年龄+1/12；收入与净资产各自独立抽取漂移因子1+(U-0.005)
func (p *Person) update() {
	s := p.snapshot
	p.runtime.age = s.age + 1.0/12
	p.runtime.income = s.income * p.generator.DriftFactor()
	p.runtime.netWorth = s.netWorth * p.generator.DriftFactor()
}

// state 导出当前运行时数据的平面记录
func (p *Person) state() PersonState {
	return PersonState{
		ID:                     p.id,
		Age:                    p.runtime.age,
		EducationLevel:         p.attr.EducationLevel,
		RiskTolerance:          p.attr.RiskTolerance,
		PoliticalView:          p.attr.PoliticalView,
		CrimeTendency:          p.attr.CrimeTendency,
		MigrationInterest:      p.attr.MigrationInterest,
		EnvironmentalAwareness: p.attr.EnvironmentalAwareness,
		CulturalPreference:     p.attr.CulturalPreference,
		NetWorth:               p.runtime.netWorth,
		Income:                 p.runtime.income,
		SavingsRate:            p.attr.SavingsRate,
		SpendingRate:           p.attr.SpendingRate,
		Employment:             p.attr.Employment,
		JobSatisfaction:        p.attr.JobSatisfaction,
		Skills:                 p.attr.Skills,
	}
}
