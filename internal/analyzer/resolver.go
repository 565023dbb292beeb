package analyzer

import "salescope/internal/model"

// Resolve 把语义字段逐个解析到上传的列名
// 必需字段无匹配时整体失败并列出缺失字段；可选字段无匹配仅记为缺席。
// 同样的列名与别名配置，结果恒定。
func Resolve(headers []string, fields []model.FieldAlias, threshold float64) (model.ColumnMap, error) {
	cm := make(model.ColumnMap, len(fields))
	var missing []model.Field

	for _, fa := range fields {
		header, ok := Match(fa.Aliases, headers, threshold)
		if ok {
			cm[fa.Field] = header
			continue
		}
		if fa.Required {
			missing = append(missing, fa.Field)
		}
	}

	if len(missing) > 0 {
		return nil, &UnresolvedRequiredFieldError{
			Missing: missing,
			Headers: append([]string(nil), headers...),
		}
	}
	return cm, nil
}
