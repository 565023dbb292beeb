package analyzer

import (
	"math"

	"salescope/internal/model"
)

// Aggregate 对规范记录计算汇总指标
// 分类按原始串精确分组（区分大小写，不做规范化）；
// 支付方式与周内分布仅在对应列存在时输出
func Aggregate(records []model.CanonicalRecord) (*model.Aggregates, error) {
	if len(records) == 0 {
		return nil, &EmptyInputError{}
	}

	agg := &model.Aggregates{
		SumByCategory:  make(map[string]float64),
		MeanByCategory: make(map[string]float64),
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	anyPayment := false
	anyDate := false

	for _, r := range records {
		agg.TotalSales += r.Sales
		if _, seen := agg.SumByCategory[r.Category]; !seen {
			order = append(order, r.Category)
		}
		agg.SumByCategory[r.Category] += r.Sales
		counts[r.Category]++

		if r.HasPayment {
			anyPayment = true
		}
		if r.Date != nil {
			anyDate = true
		}
	}

	for cat, sum := range agg.SumByCategory {
		agg.MeanByCategory[cat] = sum / float64(counts[cat])
	}

	// 销售额并列时取记录序中先出现的分类
	best := math.Inf(-1)
	for _, cat := range order {
		if agg.SumByCategory[cat] > best {
			best = agg.SumByCategory[cat]
			agg.TopCategory = cat
		}
	}

	if anyPayment {
		agg.PaymentCounts = make(map[string]int)
		for _, r := range records {
			if !r.HasPayment {
				continue
			}
			key := r.PaymentMethod
			if key == "" {
				key = model.UnspecifiedPayment
			}
			agg.PaymentCounts[key]++
		}
	}

	if anyDate {
		// 七个桶全部补零，无日期的记录不计入任何桶
		agg.WeekdayCounts = make(map[string]int, len(model.Weekdays))
		for _, day := range model.Weekdays {
			agg.WeekdayCounts[day] = 0
		}
		for _, r := range records {
			if r.Date == nil {
				continue
			}
			agg.WeekdayCounts[r.Date.Weekday().String()]++
			agg.DatedRecords++
		}
	}

	return agg, nil
}
