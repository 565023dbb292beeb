package reporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"salescope/internal/model"
)

const (
	cleanedSheet = "Cleaned Data"
	summarySheet = "Summary"

	dateCellLayout = "2006-01-02"
)

// BuildWorkbook 把清洗后的记录与汇总指标写入工作簿
// 第一个工作表为规范记录，第二个为汇总；调用方负责 Close
func BuildWorkbook(records []model.CanonicalRecord, agg *model.Aggregates, report model.CleaningReport) (*excelize.File, error) {
	f := excelize.NewFile()

	// 新建文件自带 Sheet1，重命名复用
	if err := f.SetSheetName("Sheet1", cleanedSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}

	if err := fillCleanedSheet(f, records); err != nil {
		_ = f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("创建汇总表失败: %w", err)
	}
	if err := fillSummarySheet(f, agg, report); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillCleanedSheet(f *excelize.File, records []model.CanonicalRecord) error {
	headers := []string{"Sales", "Category", "Date", "Payment Method"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cleanedSheet, cell, h); err != nil {
			return fmt.Errorf("写入表头失败: %w", err)
		}
	}

	for i, r := range records {
		row := i + 2
		if err := f.SetCellValue(cleanedSheet, fmt.Sprintf("A%d", row), r.Sales); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", row, err)
		}
		if err := f.SetCellValue(cleanedSheet, fmt.Sprintf("B%d", row), r.Category); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", row, err)
		}
		if r.Date != nil {
			if err := f.SetCellValue(cleanedSheet, fmt.Sprintf("C%d", row), r.Date.Format(dateCellLayout)); err != nil {
				return fmt.Errorf("写入第 %d 行失败: %w", row, err)
			}
		}
		if r.HasPayment {
			if err := f.SetCellValue(cleanedSheet, fmt.Sprintf("D%d", row), r.PaymentMethod); err != nil {
				return fmt.Errorf("写入第 %d 行失败: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(cleanedSheet, "A", "D", 18); err != nil {
		return err
	}
	return nil
}

func fillSummarySheet(f *excelize.File, agg *model.Aggregates, report model.CleaningReport) error {
	row := 1
	set := func(a, b interface{}) error {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), a); err != nil {
			return fmt.Errorf("写入汇总表失败: %w", err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), b); err != nil {
			return fmt.Errorf("写入汇总表失败: %w", err)
		}
		row++
		return nil
	}
	setWide := func(a, b, c interface{}) error {
		if err := set(a, b); err != nil {
			return err
		}
		row--
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), c); err != nil {
			return fmt.Errorf("写入汇总表失败: %w", err)
		}
		row++
		return nil
	}

	if err := set("Total Sales", agg.TotalSales); err != nil {
		return err
	}
	if err := set("Top Category", agg.TopCategory); err != nil {
		return err
	}
	if err := set("Input Rows", report.InputRows); err != nil {
		return err
	}
	if err := set("Rows Kept", report.OutputRows); err != nil {
		return err
	}
	if err := set("Rows Dropped", report.Dropped); err != nil {
		return err
	}
	row++

	if err := setWide("Category", "Total", "Average"); err != nil {
		return err
	}
	for _, cat := range agg.Categories() {
		if err := setWide(cat, agg.SumByCategory[cat], agg.MeanByCategory[cat]); err != nil {
			return err
		}
	}

	if len(agg.PaymentCounts) > 0 {
		row++
		if err := set("Payment Method", "Transactions"); err != nil {
			return err
		}
		keys := make([]string, 0, len(agg.PaymentCounts))
		for k := range agg.PaymentCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := set(k, agg.PaymentCounts[k]); err != nil {
				return err
			}
		}
	}

	if len(agg.WeekdayCounts) > 0 {
		row++
		if err := set("Weekday", "Transactions"); err != nil {
			return err
		}
		for _, day := range model.Weekdays {
			if err := set(day, agg.WeekdayCounts[day]); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "C", 18); err != nil {
		return err
	}
	return nil
}
