package http

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func hasFieldDetail(details []FieldError, field, contains string) bool {
	for _, d := range details {
		if d.Field == field && strings.Contains(d.Message, contains) {
			return true
		}
	}
	return false
}

func TestMobileValidation(t *testing.T) {
	type P struct {
		Mobile string `json:"mobile_number" validate:"mobile"`
	}
	cv := NewValidator()

	for _, s := range []string{"9876543210", "+919876543210", "6000000000"} {
		if err := cv.Validate(P{Mobile: s}); err != nil {
			t.Fatalf("expected valid mobile %q, got err: %v", s, err)
		}
	}
	for _, s := range []string{
		"",
		"12345",
		"5876543210",    // leading digit
		"98765432100",   // 11 digits
		"98765 43210",   // space
		"+449876543210", // foreign prefix
	} {
		err := cv.Validate(P{Mobile: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !hasFieldDetail(ToFieldErrors(err), "mobile_number", "10-digit") {
			t.Fatalf("expected mobile message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Fee *decimal.Decimal `json:"fee" validate:"omitempty,dec2"`
	}
	cv := NewValidator()
	d := func(s string) *decimal.Decimal { v := decimal.RequireFromString(s); return &v }

	for _, v := range []*decimal.Decimal{nil, d("0"), d("500"), d("99.5"), d("123.45")} {
		if err := cv.Validate(P{Fee: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []*decimal.Decimal{d("1.001"), d("-5")} {
		err := cv.Validate(P{Fee: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if !hasFieldDetail(ToFieldErrors(err), "fee", "2 decimal places") {
			t.Fatalf("unexpected details for %v: %+v", v, ToFieldErrors(err))
		}
	}
}

func TestDateValidation(t *testing.T) {
	type P struct {
		From string `query:"from" validate:"omitempty,date"`
	}
	cv := NewValidator()
	if err := cv.Validate(P{From: "2025-07-01"}); err != nil {
		t.Fatalf("expected valid date: %v", err)
	}
	if err := cv.Validate(P{}); err != nil {
		t.Fatalf("empty date is optional: %v", err)
	}
	for _, s := range []string{"2025-13-01", "01-07-2025", "2025-07-01T00:00:00Z"} {
		err := cv.Validate(P{From: s})
		if err == nil || !hasFieldDetail(ToFieldErrors(err), "from", "YYYY-MM-DD") {
			t.Fatalf("expected date error for %q, got %v", s, err)
		}
	}
}

func TestToFieldErrors_RequiredAndFallback(t *testing.T) {
	type P struct {
		FullName string `json:"full_name" validate:"required"`
		Ward     string `json:"ward" validate:"required,max=3"`
	}
	cv := NewValidator()
	err := cv.Validate(P{Ward: "12345"})
	fe := ToFieldErrors(err)
	if !hasFieldDetail(fe, "full_name", "is required") {
		t.Fatalf("missing required detail: %+v", fe)
	}
	if !hasFieldDetail(fe, "ward", "at most 3") {
		t.Fatalf("missing max detail: %+v", fe)
	}

	fe = ToFieldErrors(errString("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("fallback mismatch: %+v", fe)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
