package analyzer

import (
	"errors"
	"reflect"
	"testing"

	"salescope/internal/model"
)

func TestResolve_MessyHeaders(t *testing.T) {
	t.Parallel()

	headers := []string{"Amt", "Product", "Date", "Pay Mode"}
	cm, err := Resolve(headers, DefaultFields(), DefaultThreshold)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := model.ColumnMap{
		model.FieldSales:         "Amt",
		model.FieldCategory:      "Product",
		model.FieldDate:          "Date",
		model.FieldPaymentMethod: "Pay Mode",
	}
	if !reflect.DeepEqual(cm, want) {
		t.Fatalf("column map mismatch: got=%v want=%v", cm, want)
	}
}

func TestResolve_MissingRequiredField(t *testing.T) {
	t.Parallel()

	_, err := Resolve([]string{"Category"}, DefaultFields(), DefaultThreshold)
	if err == nil {
		t.Fatalf("expected error for missing sales column")
	}

	var unresolved *UnresolvedRequiredFieldError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedRequiredFieldError, got %T", err)
	}
	if len(unresolved.Missing) != 1 || unresolved.Missing[0] != model.FieldSales {
		t.Fatalf("expected missing=[sales], got %v", unresolved.Missing)
	}
	if !reflect.DeepEqual(unresolved.Headers, []string{"Category"}) {
		t.Fatalf("error should carry actual headers, got %v", unresolved.Headers)
	}
}

func TestResolve_OptionalFieldsAbsent(t *testing.T) {
	t.Parallel()

	// 只有必填列时，可选字段缺失不报错，也不出现在映射中
	cm, err := Resolve([]string{"Sales", "Category"}, DefaultFields(), DefaultThreshold)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(cm) != 2 {
		t.Fatalf("expected 2 entries, got %v", cm)
	}
	if _, ok := cm[model.FieldDate]; ok {
		t.Fatalf("date should be unmapped")
	}
	if _, ok := cm[model.FieldPaymentMethod]; ok {
		t.Fatalf("payment method should be unmapped")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	headers := []string{"Amt", "Product", "Order Date", "Payment Type"}
	first, err := Resolve(headers, DefaultFields(), DefaultThreshold)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Resolve(headers, DefaultFields(), DefaultThreshold)
		if err != nil {
			t.Fatalf("resolve #%d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("resolution not deterministic: %v vs %v", first, again)
		}
	}
}
