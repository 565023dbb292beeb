package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"salescope/internal/model"
)

// UnsupportedFormatError 不支持的文件扩展名，在进入核心前拒绝
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("不支持的文件格式 %q（仅支持 .csv / .xlsx）", e.Ext)
}

// FromUpload 按扩展名分发解析上传文件
func FromUpload(filename string, r io.Reader) (*model.RawTable, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return FromCSV(r)
	case ".xlsx":
		return FromXLSX(r)
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}
