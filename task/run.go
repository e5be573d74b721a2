package task

import (
	"flag"
)

const (
	SelfName = "economy" // 本程序在模拟任务中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 12, "心跳日志间隔月数")
)

// heartbeat 心跳日志，定期输出当前模拟进度与关键宏观量
func (ctx *Context) heartbeat() {
	if int(ctx.clock.Month)%*heartBeatInterval != 0 {
		return
	}
	snap := ctx.engine.Snapshot()
	log.Infof(
		"MONTH: %d (%s) GDP: %.2f unemployment: %.2f%% inflation: %.2f%%",
		ctx.clock.Month, ctx.clock,
		snap.Macro.GDP, snap.Macro.UnemploymentRate, snap.Macro.InflationPct,
	)
}

// Run 运行
// 算法说明：
// 1. 初始化经济体（第1月的初始快照）
// 2. 循环推进：每次AdvanceMonth为一次原子月度转移，
//    推进后输出心跳日志，直到到达结束月或收到关闭指令
func (ctx *Context) Run() error {
	if err := ctx.InitializeEconomy(); err != nil {
		return err
	}
	log.Infof("economy initialized at %s", ctx.clock)
	for !ctx.clock.Done() {
		if _, err := ctx.AdvanceMonth(); err != nil {
			return err
		}
		ctx.heartbeat()
		if ctx.closed.Load() {
			break
		}
	}
	log.Infof("engine complete")
	ctx.Close()
	return nil
}
