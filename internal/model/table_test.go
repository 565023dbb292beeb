package model

import (
	"reflect"
	"testing"
)

func TestRawTable_Cell(t *testing.T) {
	t.Parallel()

	table := &RawTable{
		Headers: []string{"A", "B"},
		Rows: [][]string{
			{"1", "2"},
			{"3"}, // 短行
		},
	}

	if got := table.Cell(0, 1); got != "2" {
		t.Fatalf("Cell(0,1) = %q", got)
	}
	// 越界一律返回空串
	if got := table.Cell(1, 1); got != "" {
		t.Fatalf("short row cell should be empty, got %q", got)
	}
	if got := table.Cell(5, 0); got != "" {
		t.Fatalf("out-of-range row should be empty, got %q", got)
	}
	if got := table.Cell(0, -1); got != "" {
		t.Fatalf("negative column should be empty, got %q", got)
	}
}

func TestRawTable_ColumnIndex(t *testing.T) {
	t.Parallel()

	table := &RawTable{Headers: []string{"Amt", "Product", "Amt"}}
	if got := table.ColumnIndex("Product"); got != 1 {
		t.Fatalf("ColumnIndex(Product) = %d", got)
	}
	// 重名列取第一个
	if got := table.ColumnIndex("Amt"); got != 0 {
		t.Fatalf("duplicate header should resolve to first, got %d", got)
	}
	if got := table.ColumnIndex("Nope"); got != -1 {
		t.Fatalf("missing header should be -1, got %d", got)
	}
}

func TestRawTable_Preview(t *testing.T) {
	t.Parallel()

	table := &RawTable{
		Headers: []string{"A"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	}
	if got := table.Preview(2); !reflect.DeepEqual(got, [][]string{{"1"}, {"2"}}) {
		t.Fatalf("Preview(2) = %v", got)
	}
	if got := table.Preview(10); len(got) != 3 {
		t.Fatalf("Preview beyond length should return all rows, got %d", len(got))
	}
}
