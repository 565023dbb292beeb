package analyzer

import (
	"fmt"
	"strings"

	"salescope/internal/model"
)

// UnresolvedRequiredFieldError 必需语义字段未能匹配到任何列名
// 携带检测到的列名，方便用户排查列名差异
type UnresolvedRequiredFieldError struct {
	Missing []model.Field
	Headers []string
}

func (e *UnresolvedRequiredFieldError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("无法识别必需字段: %s（检测到的列: %s）",
		strings.Join(names, ", "), strings.Join(e.Headers, ", "))
}

// EmptyResultError 清洗后没有剩余有效行，分析在聚合前中止
type EmptyResultError struct {
	Report model.CleaningReport
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("清洗后没有剩余有效数据（输入 %d 行，丢弃 %d 行）",
		e.Report.InputRows, e.Report.Dropped)
}

// EmptyInputError 对空记录集做聚合
// 属于调用契约问题：应先检查 CleaningReport / EmptyResultError
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "聚合收到空记录集"
}
