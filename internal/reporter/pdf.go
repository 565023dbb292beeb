package reporter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"salescope/internal/model"
)

// PDFOptions 报告文档选项
type PDFOptions struct {
	CurrencySymbol string
}

// WritePDF 生成销售分析报告
// 首页为汇总指标、分类明细和分类总额柱状图，其余图表排在后续页。
// 内置 core 字体只覆盖 Latin-1，文档文案固定使用英文。
func WritePDF(w io.Writer, agg *model.Aggregates, report model.CleaningReport, charts *ChartSet, opts PDFOptions) error {
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = "Rs."
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Smart Sales Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Smart Sales Report", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Sales: %s%.2f", symbol, agg.TotalSales), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Top Category: %s", agg.TopCategory), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Rows dropped during cleaning: %d", report.Dropped), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// 分类明细表
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 7, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Average", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, cat := range agg.Categories() {
		pdf.CellFormat(80, 7, cat, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%s%.2f", symbol, agg.SumByCategory[cat]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%s%.2f", symbol, agg.MeanByCategory[cat]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// 图表缺失时只出文字报告
	if charts != nil {
		if len(charts.CategorySum) > 0 {
			if err := embedChart(pdf, "category_sum", charts.CategorySum); err != nil {
				return err
			}
		}

		extras := []struct {
			name string
			png  []byte
		}{
			{"category_mean", charts.CategoryMean},
			{"payment", charts.Payment},
			{"weekday", charts.Weekday},
		}
		pageAdded := false
		for _, c := range extras {
			if len(c.png) == 0 {
				continue
			}
			if !pageAdded {
				pdf.AddPage()
				pageAdded = true
			}
			if err := embedChart(pdf, c.name, c.png); err != nil {
				return err
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("写出 PDF 失败: %w", err)
	}
	return nil
}

func embedChart(pdf *fpdf.Fpdf, name string, png []byte) error {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, 15, 0, 180, 0, true, opts, 0, "")
	pdf.Ln(4)
	if pdf.Err() {
		return fmt.Errorf("嵌入图表 %s 失败: %v", name, pdf.Error())
	}
	return nil
}
