package errors

import (
	"fmt"
	"testing"
)

func TestDiagnosticErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		d    Diagnostic
	}{
		{
			name: "message only",
			d:    Diagnostic{Code: "XPST0081", Message: "prefix not bound"},
			want: "[XPST0081] prefix not bound",
		},
		{
			name: "with name",
			d:    Diagnostic{Code: "XPST0081", Message: "prefix not bound", Name: "foo:bar"},
			want: "[XPST0081] prefix not bound at foo:bar",
		},
		{
			name: "with arity",
			d:    Diagnostic{Code: "XPST0017", Message: "unknown function", Name: "fn:concat", Arity: 1},
			want: "[XPST0017] unknown function at fn:concat#1",
		},
		{
			name: "with param",
			d:    Diagnostic{Code: "XPST0017-missing", Message: "argument missing", Name: "math:pow", Param: "x"},
			want: "[XPST0017-missing] argument missing at math:pow (param: $x)",
		},
		{
			name: "with expected",
			d: Diagnostic{
				Code:     "XPST0017",
				Message:  "unknown function",
				Name:     "f",
				Arity:    3,
				Expected: []string{"f#1", "f#2"},
			},
			want: "[XPST0017] unknown function at f#3 (expected: f#1, f#2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilDiagnostic(t *testing.T) {
	var d *Diagnostic
	if got := d.Error(); got != "diagnostic <nil>" {
		t.Fatalf("Error() = %q, want %q", got, "diagnostic <nil>")
	}
}

func TestNewDiagnosticf(t *testing.T) {
	d := NewDiagnosticf(ErrPrefixUnbound, "foo:bar", "prefix %q is not bound", "foo")
	if d.Code != string(ErrPrefixUnbound) {
		t.Fatalf("Code = %q, want %q", d.Code, ErrPrefixUnbound)
	}
	if d.Message != `prefix "foo" is not bound` {
		t.Fatalf("Message = %q, want %q", d.Message, `prefix "foo" is not bound`)
	}
	if d.Name != "foo:bar" {
		t.Fatalf("Name = %q, want %q", d.Name, "foo:bar")
	}
}

func TestDiagnosticListError(t *testing.T) {
	one := Diagnostic{Code: "XPST0081", Message: "prefix not bound"}
	two := Diagnostic{Code: "XPST0017", Message: "unknown function"}

	tests := []struct {
		name string
		want string
		list DiagnosticList
	}{
		{name: "empty", list: DiagnosticList{}, want: "no diagnostics"},
		{name: "single", list: DiagnosticList{one}, want: "[XPST0081] prefix not bound"},
		{name: "multiple", list: DiagnosticList{one, two}, want: "[XPST0081] prefix not bound (and 1 more)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsDiagnostics(t *testing.T) {
	list := DiagnosticList{
		{Code: "XPST0081", Message: "prefix not bound"},
		{Code: "XPST0017", Message: "unknown function"},
	}
	wrapped := fmt.Errorf("resolve call: %w", list)

	got, ok := AsDiagnostics(wrapped)
	if !ok {
		t.Fatalf("AsDiagnostics() ok = false, want true")
	}
	if len(got) != 2 {
		t.Fatalf("AsDiagnostics() len = %d, want 2", len(got))
	}
	if !HasCode(wrapped, ErrFunctionUnknown) {
		t.Fatalf("HasCode(XPST0017) = false, want true")
	}
	if HasCode(wrapped, ErrSyntax) {
		t.Fatalf("HasCode(XPST0003) = true, want false")
	}
	if _, ok := AsDiagnostics(fmt.Errorf("plain")); ok {
		t.Fatalf("AsDiagnostics(plain) ok = true, want false")
	}
}
