package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"salescope/internal/model"
)

// currencyRunes 数值清洗时剔除的货币符号
var currencyRunes = map[rune]struct{}{
	'₹': {}, '$': {}, '€': {}, '£': {}, '¥': {},
}

// dateLayouts 日期解析尝试顺序，ISO 写法优先
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseSalesValue 把销售额单元格转成有限浮点数
// 接受常见十进制写法，剔除货币符号、千分位逗号与空格
func ParseSalesValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("销售额单元格为空")
	}

	var b strings.Builder
	for _, r := range s {
		if r == ',' || r == ' ' {
			continue
		}
		if _, ok := currencyRunes[r]; ok {
			continue
		}
		b.WriteRune(r)
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("无法解析为数值: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("数值非有限: %q", raw)
	}
	return v, nil
}

// ParseDateValue 按已知格式逐个尝试解析日期，全部失败视为缺失
func ParseDateValue(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// Clean 把已解析的列投影成规范记录并统计丢弃原因
// 逐行规则：分类为空丢行；销售额无法转数值丢行；
// 日期解析失败只按缺失处理，不丢整行。行级缺陷就地回收，不中断请求。
func Clean(table *model.RawTable, cm model.ColumnMap) ([]model.CanonicalRecord, model.CleaningReport, error) {
	report := model.CleaningReport{InputRows: len(table.Rows)}

	salesIdx := table.ColumnIndex(cm[model.FieldSales])
	categoryIdx := table.ColumnIndex(cm[model.FieldCategory])

	dateIdx := -1
	if h, ok := cm[model.FieldDate]; ok {
		dateIdx = table.ColumnIndex(h)
	}
	paymentIdx := -1
	if h, ok := cm[model.FieldPaymentMethod]; ok {
		paymentIdx = table.ColumnIndex(h)
	}

	records := make([]model.CanonicalRecord, 0, len(table.Rows))
	for i := range table.Rows {
		category := strings.TrimSpace(table.Cell(i, categoryIdx))
		if category == "" {
			report.MissingCategory++
			continue
		}

		sales, err := ParseSalesValue(table.Cell(i, salesIdx))
		if err != nil {
			report.InvalidSales++
			continue
		}

		rec := model.CanonicalRecord{Sales: sales, Category: category}
		if dateIdx >= 0 {
			if d, ok := ParseDateValue(table.Cell(i, dateIdx)); ok {
				rec.Date = &d
			}
		}
		if paymentIdx >= 0 {
			rec.PaymentMethod = strings.TrimSpace(table.Cell(i, paymentIdx))
			rec.HasPayment = true
		}
		records = append(records, rec)
	}

	report.OutputRows = len(records)
	report.Dropped = report.MissingCategory + report.InvalidSales

	if len(records) == 0 {
		return nil, report, &EmptyResultError{Report: report}
	}
	return records, report, nil
}
