package analyzer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarityRatio_KnownPairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want float64
	}{
		{"sales", "sales", 1.0},
		{"payment", "pay mode", 2.0 * 5 / 15},  // 公共子序列 "pay" + "m" + "e"
		{"payment", "amt", 2.0 * 3 / 10},       // "am" + "t"
		{"amount", "amt", 2.0 * 3 / 9},
		{"sales", "amt", 2.0 * 1 / 8},
		{"", "sales", 0},
		{"", "", 0},
	}
	for _, c := range cases {
		got := SimilarityRatio(c.a, c.b)
		if !almostEqual(got, c.want) {
			t.Fatalf("SimilarityRatio(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestMatch_ExactBeatsFuzzy(t *testing.T) {
	t.Parallel()

	// 精确匹配（大小写不敏感）得分为 1.0，总是优先
	got, ok := Match([]string{"sales"}, []string{"Amt", "Sales", "Category"}, DefaultThreshold)
	if !ok || got != "Sales" {
		t.Fatalf("expected Sales, got %q ok=%v", got, ok)
	}
}

func TestMatch_AliasPriority(t *testing.T) {
	t.Parallel()

	// 第一个命中的别名生效，后面的别名不再参与
	got, ok := Match([]string{"sales", "amount"}, []string{"Amount", "Amt"}, DefaultThreshold)
	if !ok || got != "Amount" {
		t.Fatalf("expected Amount (matched by second alias), got %q ok=%v", got, ok)
	}
}

func TestMatch_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	// "payment" vs "amt" 的相似度正好是 0.6，等于阈值应当命中
	if r := SimilarityRatio("payment", "amt"); !almostEqual(r, 0.6) {
		t.Fatalf("precondition failed: ratio = %v", r)
	}
	got, ok := Match([]string{"payment"}, []string{"Amt"}, 0.6)
	if !ok || got != "Amt" {
		t.Fatalf("score at threshold should match, got %q ok=%v", got, ok)
	}
	if _, ok := Match([]string{"payment"}, []string{"Amt"}, 0.61); ok {
		t.Fatalf("score below threshold should not match")
	}
}

func TestMatch_TieKeepsFirstCandidate(t *testing.T) {
	t.Parallel()

	// 两个候选得分相同时保留靠前的（保持表头顺序稳定）
	got, ok := Match([]string{"sale"}, []string{"SALE", "sale"}, DefaultThreshold)
	if !ok || got != "SALE" {
		t.Fatalf("expected first of tied candidates, got %q ok=%v", got, ok)
	}
}

func TestMatch_NoCandidates(t *testing.T) {
	t.Parallel()

	if _, ok := Match([]string{"sales"}, nil, DefaultThreshold); ok {
		t.Fatalf("empty candidate list should never match")
	}
	if _, ok := Match(nil, []string{"Sales"}, DefaultThreshold); ok {
		t.Fatalf("empty alias list should never match")
	}
}

func TestMatch_NormalizesWhitespaceAndCase(t *testing.T) {
	t.Parallel()

	got, ok := Match([]string{"order date"}, []string{"  Order Date  "}, DefaultThreshold)
	if !ok || got != "  Order Date  " {
		t.Fatalf("expected original-cased header back, got %q ok=%v", got, ok)
	}
}
