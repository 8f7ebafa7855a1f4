package xqsem

import (
	"fmt"

	xqerrors "github.com/jacoelho/xqsem/errors"
	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/nsctx"
)

// Resolution is a call matched to a declaration.
type Resolution[E any] struct {
	Name      QName
	Signature Signature
	Bindings  []Binding[E]
}

// ResolveCall expands the callee name as a function reference, selects the
// declaration accepting the call's arity, and binds the arguments. A call with
// keyword arguments that accepts no arity falls back to a declaration with
// more fixed parameters naming every keyword. scope may be nil to use the
// analyzer's scope.
//
// The error, if any, is an errors.DiagnosticList. A resolution with Missing
// parameters is returned together with its diagnostics.
func ResolveCall[E any](a *Analyzer, name QName, call Call[E], scope Scope) (Resolution[E], error) {
	display := name.String()
	if name.IsIncomplete() {
		return Resolution[E]{}, xqerrors.DiagnosticList{
			xqerrors.NewDiagnostic(xqerrors.ErrSyntax, "incomplete function name", display),
		}
	}

	expanded := a.ExpandIn(name, nsctx.DefaultFunctionRef, scope)
	if len(expanded) == 0 {
		if name.Prefix.IsText() {
			return Resolution[E]{}, xqerrors.DiagnosticList{
				xqerrors.NewDiagnosticf(xqerrors.ErrPrefixUnbound, display, "prefix %s is not bound", name.Prefix.Value()),
			}
		}
		return Resolution[E]{}, xqerrors.DiagnosticList{
			xqerrors.NewDiagnostic(xqerrors.ErrNameUnresolved, "no default function namespace", display),
		}
	}
	callee := expanded[0]

	arity := call.Arity()
	candidates := a.Signatures(callee, arity)
	sig, ok := callbind.Select(candidates, arity)
	if !ok {
		sig, ok = callbind.SelectKeywords(candidates, arity, call.KeywordNames())
	}
	if !ok {
		d := xqerrors.NewDiagnostic(xqerrors.ErrFunctionUnknown, "no function matches the call", display)
		d.Arity = arity
		for _, c := range candidates {
			d.Expected = append(d.Expected, arityLabel(c))
		}
		return Resolution[E]{}, xqerrors.DiagnosticList{d}
	}

	res := Resolution[E]{Name: callee, Signature: sig, Bindings: callbind.Bind(call, sig)}
	var diags xqerrors.DiagnosticList
	for _, b := range res.Bindings {
		if b.Kind != callbind.Missing {
			continue
		}
		diags = append(diags, xqerrors.Diagnostic{
			Code:    string(xqerrors.ErrArgumentMissing),
			Message: "no argument for parameter",
			Name:    display,
			Param:   b.Param.Name.String(),
		})
	}
	if len(diags) > 0 {
		return res, diags
	}
	return res, nil
}

func arityLabel(sig Signature) string {
	if sig.Variadic == callbind.VariadicEllipsis && len(sig.Params) > 0 {
		return fmt.Sprintf("%s#%d+", sig.Name, sig.RequiredArity())
	}
	return fmt.Sprintf("%s#%d", sig.Name, sig.DeclaredArity())
}
