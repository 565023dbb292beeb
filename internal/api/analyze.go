package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salescope/internal/analyzer"
	"salescope/internal/ingest"
	"salescope/internal/model"
	"salescope/internal/reporter"
)

const previewRows = 10

// AnalyzeResponse 分析结果响应
type AnalyzeResponse struct {
	Filename       string               `json:"filename"`
	Headers        []string             `json:"headers"`
	Preview        [][]string           `json:"preview"`
	ColumnMap      map[string]string    `json:"columnMap"`
	CleaningReport model.CleaningReport `json:"cleaningReport"`
	Aggregates     *model.Aggregates    `json:"aggregates"`
	Charts         ChartPayload         `json:"charts"`
	ReportURL      string               `json:"reportUrl"`
	WorkbookURL    string               `json:"workbookUrl"`
}

// ChartPayload base64 编码的图表 PNG
type ChartPayload struct {
	CategorySum  string `json:"categorySum"`
	CategoryMean string `json:"categoryMean"`
	Payment      string `json:"payment,omitempty"`
	Weekday      string `json:"weekday,omitempty"`
}

// Analyze 上传表格并执行一次完整分析
// POST /api/analyze
func (h *Handler) Analyze(c *gin.Context) {
	uploaded, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	src, err := uploaded.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer src.Close()

	table, err := ingest.FromUpload(uploaded.Filename, src)
	if err != nil {
		var unsupported *ingest.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unsupported.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("解析上传文件失败: %v", err)})
		return
	}

	result, err := analyzer.Analyze(table, h.analysis)
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	charts, err := reporter.RenderCharts(result.Aggregates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("渲染图表失败: %v", err)})
		return
	}

	reportURL, err := h.stashPDF(result, charts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("生成报告失败: %v", err)})
		return
	}

	workbookURL, err := h.stashWorkbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("生成工作簿失败: %v", err)})
		return
	}

	columnMap := make(map[string]string, len(result.ColumnMap))
	for field, header := range result.ColumnMap {
		columnMap[string(field)] = header
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Filename:       uploaded.Filename,
		Headers:        table.Headers,
		Preview:        table.Preview(previewRows),
		ColumnMap:      columnMap,
		CleaningReport: result.Report,
		Aggregates:     result.Aggregates,
		Charts:         encodeCharts(charts),
		ReportURL:      reportURL,
		WorkbookURL:    workbookURL,
	})
}

// writeAnalyzeError 把核心错误映射为 HTTP 响应
// 行级缺陷已在清洗阶段就地回收并计数，这里只处理整表级错误
func (h *Handler) writeAnalyzeError(c *gin.Context, err error) {
	var unresolved *analyzer.UnresolvedRequiredFieldError
	if errors.As(err, &unresolved) {
		missing := make([]string, len(unresolved.Missing))
		for i, f := range unresolved.Missing {
			missing[i] = string(f)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "无法识别必需字段，请检查列名",
			"missingFields": missing,
			"headers":       unresolved.Headers,
		})
		return
	}

	var empty *analyzer.EmptyResultError
	if errors.As(err, &empty) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "清洗后没有剩余有效数据，请检查文件内容",
			"cleaningReport": empty.Report,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) stashPDF(result *analyzer.Result, charts *reporter.ChartSet) (string, error) {
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("salescope_report_%s.pdf", uuid.NewString()))

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("创建报告文件失败: %w", err)
	}

	opts := reporter.PDFOptions{CurrencySymbol: h.cfg.Report.CurrencySymbol}
	if err := reporter.WritePDF(f, result.Aggregates, result.Report, charts, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}

	token := h.downloads.put(downloadItem{
		filePath:    tempPath,
		fileName:    "sales_report.pdf",
		contentType: "application/pdf",
	}, h.downloadTTL())
	return "/api/download/" + token, nil
}

func (h *Handler) stashWorkbook(result *analyzer.Result) (string, error) {
	wb, err := reporter.BuildWorkbook(result.Records, result.Aggregates, result.Report)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("salescope_cleaned_%s.xlsx", uuid.NewString()))
	if err := wb.SaveAs(tempPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("写入工作簿失败: %w", err)
	}

	token := h.downloads.put(downloadItem{
		filePath:    tempPath,
		fileName:    "cleaned_sales_data.xlsx",
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, h.downloadTTL())
	return "/api/download/" + token, nil
}

func (h *Handler) downloadTTL() time.Duration {
	minutes := h.cfg.Report.DownloadTTLMinutes
	if minutes <= 0 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

func encodeCharts(charts *reporter.ChartSet) ChartPayload {
	payload := ChartPayload{
		CategorySum:  base64.StdEncoding.EncodeToString(charts.CategorySum),
		CategoryMean: base64.StdEncoding.EncodeToString(charts.CategoryMean),
	}
	if len(charts.Payment) > 0 {
		payload.Payment = base64.StdEncoding.EncodeToString(charts.Payment)
	}
	if len(charts.Weekday) > 0 {
		payload.Weekday = base64.StdEncoding.EncodeToString(charts.Weekday)
	}
	return payload
}
