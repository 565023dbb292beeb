package analyzer

import (
	"errors"
	"math"
	"testing"
	"time"

	"salescope/internal/model"
)

func TestParseSalesValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"7.5", 7.5, true},
		{"  42.0  ", 42, true},
		{"1,234.56", 1234.56, true},
		{"₹1,234.56", 1234.56, true},
		{"$99", 99, true},
		{"-10.5", -10.5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1/2", 0, false},
	}
	for _, c := range cases {
		got, err := ParseSalesValue(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ParseSalesValue(%q) err=%v, want ok=%v", c.in, err, c.ok)
		}
		if err == nil && math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ParseSalesValue(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateValue(t *testing.T) {
	t.Parallel()

	d, ok := ParseDateValue("2024-01-08")
	if !ok {
		t.Fatalf("ISO date should parse")
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 8 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Weekday() != time.Monday {
		t.Fatalf("2024-01-08 should be Monday, got %v", d.Weekday())
	}

	if _, ok := ParseDateValue("not a date"); ok {
		t.Fatalf("garbage should not parse")
	}
	if _, ok := ParseDateValue(""); ok {
		t.Fatalf("empty string should not parse")
	}
}

func TestClean_DropsInvalidSales(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category"},
		Rows: [][]string{
			{"12", "A"},
			{"abc", "B"},
			{"7.5", "C"},
		},
	}
	cm := model.ColumnMap{model.FieldSales: "Sales", model.FieldCategory: "Category"}

	records, report, err := Clean(table, cm)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if report.InputRows != 3 || report.OutputRows != 2 || report.Dropped != 1 || report.InvalidSales != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if records[0].Sales != 12 || records[1].Sales != 7.5 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestClean_DropsMissingCategory(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category"},
		Rows: [][]string{
			{"10", "A"},
			{"20", "   "},
			{"30", ""},
		},
	}
	cm := model.ColumnMap{model.FieldSales: "Sales", model.FieldCategory: "Category"}

	records, report, err := Clean(table, cm)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if report.MissingCategory != 2 || report.Dropped != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestClean_ReportBalances(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category"},
		Rows: [][]string{
			{"1", "A"},
			{"x", "A"},
			{"2", ""},
			{"y", ""}, // 类别缺失优先于金额非法计数
			{"3", "B"},
		},
	}
	cm := model.ColumnMap{model.FieldSales: "Sales", model.FieldCategory: "Category"}

	_, report, err := Clean(table, cm)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if report.InputRows != report.OutputRows+report.Dropped {
		t.Fatalf("input != output + dropped: %+v", report)
	}
	if report.MissingCategory+report.InvalidSales != report.Dropped {
		t.Fatalf("drop reasons do not sum: %+v", report)
	}
	if report.MissingCategory != 2 || report.InvalidSales != 1 {
		t.Fatalf("unexpected breakdown: %+v", report)
	}
}

func TestClean_BadDateKeptWithoutDate(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category", "Date"},
		Rows: [][]string{
			{"10", "A", "2024-01-08"},
			{"20", "B", "soon"},
		},
	}
	cm := model.ColumnMap{
		model.FieldSales:    "Sales",
		model.FieldCategory: "Category",
		model.FieldDate:     "Date",
	}

	records, report, err := Clean(table, cm)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	// 日期解析失败不丢行，只是该行没有日期
	if len(records) != 2 || report.Dropped != 0 {
		t.Fatalf("bad date must not drop the row: %+v", report)
	}
	if records[0].Date == nil {
		t.Fatalf("first row should carry a date")
	}
	if records[1].Date != nil {
		t.Fatalf("second row should have no date")
	}
}

func TestClean_PaymentColumnPresence(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category", "Pay Mode"},
		Rows: [][]string{
			{"10", "A", "Cash"},
			{"20", "B", ""},
		},
	}
	cm := model.ColumnMap{
		model.FieldSales:         "Sales",
		model.FieldCategory:      "Category",
		model.FieldPaymentMethod: "Pay Mode",
	}

	records, _, err := Clean(table, cm)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !records[0].HasPayment || records[0].PaymentMethod != "Cash" {
		t.Fatalf("unexpected payment: %+v", records[0])
	}
	if !records[1].HasPayment || records[1].PaymentMethod != "" {
		t.Fatalf("empty payment cell should still mark the column present: %+v", records[1])
	}
}

func TestClean_AllRowsDropped(t *testing.T) {
	t.Parallel()

	table := &model.RawTable{
		Headers: []string{"Sales", "Category"},
		Rows: [][]string{
			{"abc", "A"},
			{"def", "B"},
		},
	}
	cm := model.ColumnMap{model.FieldSales: "Sales", model.FieldCategory: "Category"}

	_, _, err := Clean(table, cm)
	var empty *EmptyResultError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyResultError, got %v", err)
	}
	if empty.Report.InputRows != 2 || empty.Report.Dropped != 2 {
		t.Fatalf("error should carry the cleaning report: %+v", empty.Report)
	}
}
