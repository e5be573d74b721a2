// 模拟结果输出，按月将宏观统计写入MongoDB
package output

import (
	"context"

	"git.fiblab.net/general/common/v2/mongoutil"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/macrosim-lab/economy-sim-oss/ecosim"
	"github.com/macrosim-lab/economy-sim-oss/utils/config"
)

// log 输出模块的日志记录器
var log = logrus.WithField("module", "output")

// Recorder 宏观统计记录器
// 功能：每个模拟月向MongoDB集合追加一条宏观统计文档
// 说明：URI为空时禁用；写入失败只记日志，不影响模拟状态（快照不可被外部失败污染）
type Recorder struct {
	job    string
	client *mongo.Client
	col    *mongo.Collection
}

// NewRecorder 根据输出配置创建记录器
// 返回：配置了URI则返回可用记录器，否则返回禁用的空记录器
func NewRecorder(job string, c config.Output) *Recorder {
	if c.URI == "" {
		log.Info("disable macro output")
		return &Recorder{job: job}
	}
	client := mongoutil.NewClient(c.URI)
	log.Infof("enable macro output to %s.%s", c.DB, c.Col)
	return &Recorder{
		job:    job,
		client: client,
		col:    client.Database(c.DB).Collection(job + "." + c.Col),
	}
}

// Record 写入一个月的宏观统计
func (r *Recorder) Record(month int32, stats ecosim.MacroStats) {
	if r.col == nil {
		return
	}
	doc := bson.M{
		"job":                   r.job,
		"month":                 month,
		"gdp":                   stats.GDP,
		"population":            stats.Population,
		"gdp_per_capita":        stats.GDPPerCapita,
		"debt_pct_gdp":          stats.DebtPctGDP,
		"deficit_pct_gdp":       stats.DeficitPctGDP,
		"unemployment_rate_pct": stats.UnemploymentRate,
		"inflation_pct":         stats.InflationPct,
	}
	if _, err := r.col.InsertOne(context.Background(), doc); err != nil {
		log.Errorf("failed to record month %d (GDP %s): %v",
			month, ecosim.FormatCurrency(stats.GDP), err)
	}
}

// Close 断开MongoDB连接
func (r *Recorder) Close() {
	if r.client != nil {
		if err := r.client.Disconnect(context.Background()); err != nil {
			log.Errorf("failed to disconnect: %v", err)
		}
	}
}
