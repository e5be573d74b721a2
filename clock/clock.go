package clock

import (
	"fmt"

	"github.com/macrosim-lab/economy-sim-oss/utils/config"
)

// Clock 模拟时钟管理器
// 功能：管理模拟的月度推进，维护当前月序号与结束月
// 说明：月序号从1开始，初始快照对应第1月，模拟区间为(START, END]
type Clock struct {
	START_MONTH int32 // 起始月（初始快照所在月）
	END_MONTH   int32 // 结束月

	Month int32 // 当前月序号
}

// New 根据配置创建新的时钟实例
func New(control config.Control) *Clock {
	c := &Clock{
		START_MONTH: 1,
		END_MONTH:   1 + int32(control.Months),
	}
	c.Init()
	return c
}

// Init 重置时钟到起始月
func (c *Clock) Init() {
	c.Month = c.START_MONTH
}

// Done 是否已达到结束月
func (c *Clock) Done() bool {
	return c.Month >= c.END_MONTH
}

// YearMonth 将月序号分解为年与月（第1月为Year 1, Month 1）
func (c *Clock) YearMonth() (int32, int32) {
	year := (c.Month-1)/12 + 1
	month := (c.Month-1)%12 + 1
	return year, month
}

// String 获取时钟的字符串表示
func (c *Clock) String() string {
	year, month := c.YearMonth()
	return fmt.Sprintf("Year %d, Month %d", year, month)
}
