package ecosim

import "fmt"

// ErrorKind 模拟错误类别
type ErrorKind string

const (
	// InvalidPopulation 人口或企业数为负，在生成前拒绝
	InvalidPopulation ErrorKind = "InvalidPopulation"
	// EmptyPopulationDivision 人口为0时的除法退化情形，按策略取0而非失败
	EmptyPopulationDivision ErrorKind = "EmptyPopulationDivision"
	// EmptyPublicMarket 上市企业集合为空，股指按策略取0而非失败
	EmptyPublicMarket ErrorKind = "EmptyPublicMarket"
)

// SimError 自定义错误类型
type SimError struct {
	Kind    ErrorKind
	Message string
}

func (e *SimError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newSimError(kind ErrorKind, format string, args ...any) *SimError {
	return &SimError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
