package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"salescope/internal/model"
)

// FromCSV 解析逗号分隔文本（UTF-8，首行为列名）
// 上传的文件常有行宽不齐、引号不规范的问题，读取时放宽校验
func FromCSV(r io.Reader) (*model.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("读取 CSV 失败: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV 文件为空")
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		data = append(data, row)
	}

	return &model.RawTable{Headers: trimHeaders(rows[0]), Rows: data}, nil
}
