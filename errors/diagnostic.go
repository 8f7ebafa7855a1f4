package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a W3C XQuery static error code.
// See: https://www.w3.org/TR/xquery-31/#id-errors
type ErrorCode string

const (
	// ErrPrefixUnbound indicates a lexical QName uses a prefix with no in-scope binding.
	ErrPrefixUnbound ErrorCode = "XPST0081"
	// ErrNameUnresolved indicates a name expanded but nothing is declared under it.
	ErrNameUnresolved ErrorCode = "XPST0008"
	// ErrFunctionUnknown indicates no declared function matches the name and arity.
	ErrFunctionUnknown ErrorCode = "XPST0017"
	// ErrSyntax indicates a name or type text is malformed.
	ErrSyntax ErrorCode = "XPST0003"
	// ErrArgumentMissing indicates a required parameter received no argument.
	ErrArgumentMissing ErrorCode = "XPST0017-missing"
	// ErrConfigInvalid indicates a static context file could not be loaded.
	ErrConfigInvalid ErrorCode = "xqsem-config-invalid"
)

// Diagnostic describes a static error with its code, the offending name,
// and optional parameter and arity context.
type Diagnostic struct {
	Code     string
	Message  string
	Name     string
	Param    string
	Expected []string
	Arity    int
}

// DiagnosticList is an error that wraps one or more diagnostics.
type DiagnosticList []Diagnostic

// Error returns a compact summary of the diagnostics.
func (d DiagnosticList) Error() string {
	switch len(d) {
	case 0:
		return "no diagnostics"
	case 1:
		return d[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", d[0].Error(), len(d)-1)
	}
}

// Error formats the diagnostic for display, including code, message, and context.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Code, d.Message)
	if d.Name != "" {
		fmt.Fprintf(&b, " at %s", d.Name)
		if d.Arity > 0 {
			fmt.Fprintf(&b, "#%d", d.Arity)
		}
	}
	if d.Param != "" {
		fmt.Fprintf(&b, " (param: $%s)", d.Param)
	}
	if len(d.Expected) > 0 {
		fmt.Fprintf(&b, " (expected: %s)", strings.Join(d.Expected, ", "))
	}
	return b.String()
}

// NewDiagnostic builds a Diagnostic with a code, message, and offending name.
func NewDiagnostic(code ErrorCode, msg, name string) Diagnostic {
	return Diagnostic{Code: string(code), Message: msg, Name: name}
}

// NewDiagnosticf formats a message and builds a Diagnostic.
func NewDiagnosticf(code ErrorCode, name, format string, args ...any) Diagnostic {
	return NewDiagnostic(code, fmt.Sprintf(format, args...), name)
}

// AsDiagnostics extracts diagnostics from an error returned by resolver helpers.
func AsDiagnostics(err error) ([]Diagnostic, bool) {
	list, ok := asDiagnosticList(err)
	if !ok {
		return nil, false
	}
	return []Diagnostic(list), true
}

// HasCode reports whether err carries a diagnostic with code.
func HasCode(err error, code ErrorCode) bool {
	list, ok := asDiagnosticList(err)
	if !ok {
		return false
	}
	for _, d := range list {
		if d.Code == string(code) {
			return true
		}
	}
	return false
}

func asDiagnosticList(err error) (DiagnosticList, bool) {
	if err == nil {
		return nil, false
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *DiagnosticList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
