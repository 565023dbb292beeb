package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"salescope/internal/model"
)

// FromXLSX 解析电子表格，仅取第一个工作表，首行为列名
func FromXLSX(r io.Reader) (*model.RawTable, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("工作簿中没有工作表")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("工作表 %s 为空", sheets[0])
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
