package analyzer

import "salescope/internal/model"

// Config 分析配置，进程级静态，不随请求变化
type Config struct {
	Threshold float64
	Fields    []model.FieldAlias
}

// DefaultConfig 内置别名与默认阈值
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		Fields:    DefaultFields(),
	}
}

// Result 一次分析的全部产出，请求级，随请求丢弃
type Result struct {
	ColumnMap  model.ColumnMap
	Records    []model.CanonicalRecord
	Report     model.CleaningReport
	Aggregates *model.Aggregates
}

// Analyze 执行一次完整的 解析 → 清洗 → 聚合 流程
func Analyze(table *model.RawTable, cfg Config) (*Result, error) {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = DefaultFields()
	}

	cm, err := Resolve(table.Headers, cfg.Fields, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	records, report, err := Clean(table, cm)
	if err != nil {
		return nil, err
	}

	agg, err := Aggregate(records)
	if err != nil {
		return nil, err
	}

	return &Result{
		ColumnMap:  cm,
		Records:    records,
		Report:     report,
		Aggregates: agg,
	}, nil
}
