package ecosim

import "math"

// RatePoint 利率历史样本
type RatePoint struct {
	Month int32   // 月序号，从1开始
	Rate  float64 // 政策利率（百分比）
}

// CentralBank 央行实体
// 说明：利率历史为追加序列，初始化时写入第1月样本，此后每月追加一项
type CentralBank struct {
	interestRate    float64     // 政策利率（百分比）
	inflationTarget float64     // 通胀目标（百分比，静态）
	history         []RatePoint // 利率历史
}

// NewCentralBank 创建央行实例并写入第1月利率样本
func NewCentralBank(interestRate, inflationTarget float64) *CentralBank {
	return &CentralBank{
		interestRate:    interestRate,
		inflationTarget: inflationTarget,
		history:         []RatePoint{{Month: 1, Rate: interestRate}},
	}
}

// applyMonetary 货币政策步骤：简单通胀目标规则
// 算法说明：通胀（按分数比较）高于目标则加息0.5个百分点，
// 否则降息0.5个百分点且下限1.0%；随后追加(month, rate)历史样本
func (b *CentralBank) applyMonetary(inflationPct float64, month int32) {
	if inflationPct/100 > b.inflationTarget/100 {
		b.interestRate += rateStep
	} else {
		b.interestRate = math.Max(rateFloor, b.interestRate-rateStep)
	}
	b.history = append(b.history, RatePoint{Month: month, Rate: b.interestRate})
}

// setRate 手动设定利率并追加历史样本（外部调息指令）
func (b *CentralBank) setRate(rate float64, month int32) {
	b.interestRate = rate
	b.history = append(b.history, RatePoint{Month: month, Rate: rate})
}

// state 导出平面记录
func (b *CentralBank) state() CentralBankState {
	history := make([]RatePoint, len(b.history))
	copy(history, b.history)
	return CentralBankState{
		InterestRate:    b.interestRate,
		InflationTarget: b.inflationTarget,
		History:         history,
	}
}

// newCentralBankFromState 从快照记录恢复央行实体
func newCentralBankFromState(st CentralBankState) *CentralBank {
	history := make([]RatePoint, len(st.History))
	copy(history, st.History)
	return &CentralBank{
		interestRate:    st.InterestRate,
		inflationTarget: st.InflationTarget,
		history:         history,
	}
}
