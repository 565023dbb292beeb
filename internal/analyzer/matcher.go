package analyzer

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// normalizeName 规范化列名/别名：去首尾空白并统一小写
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// splitRunes 把字符串拆成单字符序列，供 SequenceMatcher 做字符级比较
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// SimilarityRatio 计算两个字符串的 Ratcliff-Obershelp 相似度（0-1）
// 与原工具 difflib.SequenceMatcher 同口径，阈值按该口径校准，
// 换用其它距离（如 Levenshtein）前需要重新验证阈值
func SimilarityRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// Match 在候选列名中为别名列表找出最佳近似匹配
// 按别名优先级：第一个产生达标匹配（得分 >= threshold）的别名胜出；
// 同一别名下同分候选取原始顺序靠前者；全部不达标返回 false。
// 纯函数，返回候选的原始写法。
func Match(aliases, candidates []string, threshold float64) (string, bool) {
	if len(aliases) == 0 || len(candidates) == 0 {
		return "", false
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = normalizeName(c)
	}

	for _, alias := range aliases {
		a := normalizeName(alias)
		if a == "" {
			continue
		}

		bestIdx := -1
		bestScore := 0.0
		for i, c := range normalized {
			if c == "" {
				continue
			}
			score := SimilarityRatio(a, c)
			if score >= threshold && score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}
		if bestIdx >= 0 {
			return candidates[bestIdx], true
		}
	}

	return "", false
}
