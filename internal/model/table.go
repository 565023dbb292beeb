package model

// RawTable 一次上传的原始表格：列名 + 字符串单元格
// 列名与列数任意，行允许参差不齐，越界单元格按空值处理。
// 生命周期仅限一次分析请求。
type RawTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Cell 读取指定单元格，越界返回空串
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// ColumnIndex 按原始列名找列下标（同名列取第一个），找不到返回 -1
func (t *RawTable) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// Preview 返回前 n 行数据（用于界面预览）
func (t *RawTable) Preview(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}
