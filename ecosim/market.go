package ecosim

import "github.com/samber/lo"

// StockMarket 股票市场实体
// 说明：成员为生成时标记上市的企业，此后不增不减；
// 指数历史为追加序列，初始化时写入初值，此后每月追加一项
type StockMarket struct {
	publicIDs    []int32   // 上市企业ID，生成后固定
	index        float64   // 当前指数
	indexHistory []float64 // 指数历史
}

// NewStockMarket 创建股票市场实例并写入初始指数样本
func NewStockMarket(publicIDs []int32, index float64) *StockMarket {
	ids := make([]int32, len(publicIDs))
	copy(ids, publicIDs)
	return &StockMarket{
		publicIDs:    ids,
		index:        index,
		indexHistory: []float64{index},
	}
}

// applyIndex 股指步骤：对本月已更新的上市企业市值取算术平均
// 边界：上市企业集合为空时指数取0而非失败
func (m *StockMarket) applyIndex(public []*Company) {
	if len(public) == 0 {
		m.index = 0
	} else {
		total := lo.SumBy(public, func(c *Company) float64 { return c.runtime.marketCap })
		m.index = total / float64(len(public))
	}
	m.indexHistory = append(m.indexHistory, m.index)
}

// state 导出平面记录，上市企业记录由引擎按成员ID补齐
func (m *StockMarket) state(public []*Company) StockMarketState {
	ids := make([]int32, len(m.publicIDs))
	copy(ids, m.publicIDs)
	history := make([]float64, len(m.indexHistory))
	copy(history, m.indexHistory)
	companies := make([]CompanyState, len(public))
	for i, c := range public {
		companies[i] = c.state()
	}
	return StockMarketState{
		PublicCompanyIDs: ids,
		PublicCompanies:  companies,
		Index:            m.index,
		IndexHistory:     history,
	}
}

// newStockMarketFromState 从快照记录恢复股票市场实体
func newStockMarketFromState(st StockMarketState) *StockMarket {
	ids := make([]int32, len(st.PublicCompanyIDs))
	copy(ids, st.PublicCompanyIDs)
	history := make([]float64, len(st.IndexHistory))
	copy(history, st.IndexHistory)
	return &StockMarket{
		publicIDs:    ids,
		index:        st.Index,
		indexHistory: history,
	}
}
