package model

import (
	"sort"
	"time"
)

// Field 语义字段标识
type Field string

const (
	FieldSales         Field = "sales"
	FieldCategory      Field = "category"
	FieldDate          Field = "date"
	FieldPaymentMethod Field = "paymentMethod"
)

// FieldAlias 语义字段及其候选别名
// 别名顺序即匹配优先级
type FieldAlias struct {
	Field    Field    `json:"field"`
	Aliases  []string `json:"aliases"`
	Required bool     `json:"required"`
}

// ColumnMap 语义字段到原始列名的映射
// 每次上传构建一次，之后只读；未解析的可选字段不出现在映射中
type ColumnMap map[Field]string

// CanonicalRecord 清洗后的单行记录
// 约束：Sales 恒为有限数值，Category 恒非空
type CanonicalRecord struct {
	Sales         float64    `json:"sales"`
	Category      string     `json:"category"`
	Date          *time.Time `json:"date,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	HasPayment    bool       `json:"-"`
}

// CleaningReport 清洗统计，按丢弃原因分类计数
type CleaningReport struct {
	InputRows       int `json:"inputRows"`
	OutputRows      int `json:"outputRows"`
	Dropped         int `json:"dropped"`
	MissingCategory int `json:"droppedMissingCategory"`
	InvalidSales    int `json:"droppedInvalidSales"`
}

// Weekdays 周一到周日的固定输出顺序
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// UnspecifiedPayment 支付方式单元格为空时的归类桶
const UnspecifiedPayment = "(unspecified)"

// Aggregates 单次上传的汇总指标（只读、派生）
// PaymentCounts / WeekdayCounts 仅在对应列解析成功时存在
type Aggregates struct {
	TotalSales     float64            `json:"totalSales"`
	SumByCategory  map[string]float64 `json:"sumByCategory"`
	MeanByCategory map[string]float64 `json:"meanByCategory"`
	TopCategory    string             `json:"topCategory"`
	PaymentCounts  map[string]int     `json:"paymentCounts,omitempty"`
	WeekdayCounts  map[string]int     `json:"weekdayCounts,omitempty"`
	DatedRecords   int                `json:"datedRecords"`
}

// Categories 返回排序后的分类键，图表与明细表按此稳定顺序输出
func (a *Aggregates) Categories() []string {
	out := make([]string, 0, len(a.SumByCategory))
	for k := range a.SumByCategory {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
