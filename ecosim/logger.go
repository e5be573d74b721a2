package ecosim

import "github.com/sirupsen/logrus"

// log 经济模拟模块的日志记录器
var log = logrus.WithField("module", "ecosim")
