package analyzer

import "salescope/internal/model"

// DefaultThreshold 默认相似度阈值（按 Ratcliff-Obershelp 口径校准）
const DefaultThreshold = 0.6

// DefaultFields 内置字段别名配置
// 字段顺序即解析顺序，别名顺序即匹配优先级；运行期不接受用户修改
func DefaultFields() []model.FieldAlias {
	return []model.FieldAlias{
		{
			Field:    model.FieldSales,
			Required: true,
			Aliases:  []string{"sales", "amount", "amt", "revenue", "total sales", "sale amount"},
		},
		{
			Field:    model.FieldCategory,
			Required: true,
			Aliases:  []string{"category", "product", "item", "product category", "segment"},
		},
		{
			Field:   model.FieldDate,
			Aliases: []string{"date", "order date", "transaction date", "datetime", "day"},
		},
		{
			Field:   model.FieldPaymentMethod,
			Aliases: []string{"payment", "payment method", "pay mode", "payment type", "mode of payment"},
		},
	}
}
