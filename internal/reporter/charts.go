package reporter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"salescope/internal/model"
)

const (
	barChartWidth  = 760
	barChartHeight = 420
	pieChartSize   = 520
)

// ChartSet 一次分析的全部图表（PNG 字节）
// Payment / Weekday 在对应聚合缺席时为 nil
type ChartSet struct {
	CategorySum  []byte
	CategoryMean []byte
	Payment      []byte
	Weekday      []byte
}

// RenderCharts 渲染一次分析的全部图表
func RenderCharts(agg *model.Aggregates) (*ChartSet, error) {
	set := &ChartSet{}
	var err error

	if set.CategorySum, err = CategorySumChart(agg); err != nil {
		return nil, err
	}
	if set.CategoryMean, err = CategoryMeanChart(agg); err != nil {
		return nil, err
	}
	if set.Payment, err = PaymentPieChart(agg); err != nil {
		return nil, err
	}
	if set.Weekday, err = WeekdayChart(agg); err != nil {
		return nil, err
	}
	return set, nil
}

// CategorySumChart 分类销售总额柱状图
func CategorySumChart(agg *model.Aggregates) ([]byte, error) {
	return renderBars("Total Sales by Category", categoryValues(agg.SumByCategory, agg.Categories()))
}

// CategoryMeanChart 分类销售均值柱状图
func CategoryMeanChart(agg *model.Aggregates) ([]byte, error) {
	return renderBars("Average Sales per Category", categoryValues(agg.MeanByCategory, agg.Categories()))
}

// PaymentPieChart 支付方式分布饼图，没有支付方式列时返回 nil
func PaymentPieChart(agg *model.Aggregates) ([]byte, error) {
	if len(agg.PaymentCounts) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(agg.PaymentCounts))
	for k := range agg.PaymentCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]chart.Value, 0, len(keys))
	for _, k := range keys {
		values = append(values, chart.Value{Label: k, Value: float64(agg.PaymentCounts[k])})
	}

	pie := chart.PieChart{
		Title:  "Payment Method Distribution",
		Width:  pieChartSize,
		Height: pieChartSize,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("渲染支付方式饼图失败: %w", err)
	}
	return buf.Bytes(), nil
}

// WeekdayChart 周内交易量柱状图，没有日期列时返回 nil
func WeekdayChart(agg *model.Aggregates) ([]byte, error) {
	if len(agg.WeekdayCounts) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		values = append(values, chart.Value{Label: day[:3], Value: float64(agg.WeekdayCounts[day])})
	}
	return renderBars("Transactions by Day of Week", values)
}

func categoryValues(m map[string]float64, order []string) []chart.Value {
	values := make([]chart.Value, 0, len(order))
	for _, cat := range order {
		values = append(values, chart.Value{Label: cat, Value: m[cat]})
	}
	return values
}

func renderBars(title string, values []chart.Value) ([]byte, error) {
	// go-chart 在数值区间退化为零时无法定刻度，显式给定 Y 轴范围
	minV, maxV := 0.0, 0.0
	for _, v := range values {
		if v.Value < minV {
			minV = v.Value
		}
		if v.Value > maxV {
			maxV = v.Value
		}
	}
	if maxV <= minV {
		maxV = minV + 1
	}

	bars := chart.BarChart{
		Title:    title,
		Width:    barChartWidth,
		Height:   barChartHeight,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: minV, Max: maxV * 1.1},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := bars.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("渲染柱状图 %q 失败: %w", title, err)
	}
	return buf.Bytes(), nil
}
