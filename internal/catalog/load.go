package catalog

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml"

	xqerrors "github.com/jacoelho/xqsem/errors"
	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/nsctx"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
	"github.com/jacoelho/xqsem/internal/typesyntax"
	"github.com/jacoelho/xqsem/internal/xmlnames"
)

// tomlStaticContext is the static context file as encoded in TOML.
type tomlStaticContext struct {
	DefaultElementNamespace  *string          `toml:"default-element-namespace"`
	DefaultFunctionNamespace *string          `toml:"default-function-namespace"`
	Namespaces               []*tomlNamespace `toml:"namespace"`
	Functions                []*tomlFunction  `toml:"function"`
}

type tomlNamespace struct {
	Prefix string `toml:"prefix"`
	URI    string `toml:"uri"`
}

type tomlFunction struct {
	Name     string       `toml:"name"`
	Return   string       `toml:"return"`
	Variadic bool         `toml:"variadic"`
	Params   []*tomlParam `toml:"param"`
}

type tomlParam struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// StaticContext is a loaded static context: its declarations layered on the
// parent scope, and the functions it declares.
type StaticContext struct {
	Scope   *nsctx.StaticScope
	Catalog *Catalog
}

// LoadFile reads a static context file.
func LoadFile(path string, parent nsctx.Scope) (*StaticContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open static context: %w", err)
	}
	defer f.Close()

	sc, err := Load(f, parent)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sc, nil
}

// Load reads a static context from r. Declarations that cannot be used are
// reported together as an errors.DiagnosticList.
func Load(r io.Reader, parent nsctx.Scope) (*StaticContext, error) {
	buff, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read static context: %w", err)
	}
	tsc := &tomlStaticContext{}
	if err := toml.Unmarshal(buff, tsc); err != nil {
		return nil, fmt.Errorf("parse static context: %w", err)
	}

	var diags xqerrors.DiagnosticList
	scope := nsctx.NewScope(parent, declarations(tsc, &diags)...)

	cat := New()
	for _, tf := range tsc.Functions {
		if tf == nil {
			continue
		}
		if sig, ok := signature(tf, scope, &diags); ok {
			cat.Add(sig)
		}
	}
	if len(diags) > 0 {
		return nil, diags
	}
	return &StaticContext{Scope: scope, Catalog: cat}, nil
}

func declarations(tsc *tomlStaticContext, diags *xqerrors.DiagnosticList) []nsctx.Declaration {
	var decls []nsctx.Declaration
	for _, ns := range tsc.Namespaces {
		if ns == nil {
			continue
		}
		if ns.Prefix == "" || !qname.IsValidNCName(ns.Prefix) {
			*diags = append(*diags, xqerrors.NewDiagnosticf(xqerrors.ErrConfigInvalid, ns.Prefix, "invalid namespace prefix %q", ns.Prefix))
			continue
		}
		if err := xmlnames.ValidateReservedBinding(ns.Prefix, ns.URI); err != nil {
			*diags = append(*diags, xqerrors.NewDiagnostic(xqerrors.ErrConfigInvalid, err.Error(), ns.Prefix))
			continue
		}
		decls = append(decls, nsctx.NamespaceDecl{PrefixText: ns.Prefix, URIText: ns.URI})
	}
	if tsc.DefaultElementNamespace != nil {
		decls = append(decls, nsctx.DefaultElementNamespaceDecl{URIText: *tsc.DefaultElementNamespace})
	}
	if tsc.DefaultFunctionNamespace != nil {
		decls = append(decls, nsctx.DefaultFunctionNamespaceDecl{URIText: *tsc.DefaultFunctionNamespace})
	}
	// scopes are nearest-first, so a later [[namespace]] shadows an earlier one
	slices.Reverse(decls)
	return decls
}

func signature(tf *tomlFunction, scope nsctx.Scope, diags *xqerrors.DiagnosticList) (callbind.Signature, bool) {
	lexical := qname.Parse(tf.Name)
	if lexical.IsIncomplete() || lexical.Prefix.IsWildcard() || lexical.Local.IsWildcard() {
		*diags = append(*diags, xqerrors.NewDiagnosticf(xqerrors.ErrSyntax, tf.Name, "invalid function name %q", tf.Name))
		return callbind.Signature{}, false
	}
	expanded := nsctx.Expand(lexical, nsctx.DefaultFunctionDecl, scope)
	if len(expanded) == 0 {
		code := xqerrors.ErrNameUnresolved
		if lexical.Prefix.IsText() {
			code = xqerrors.ErrPrefixUnbound
		}
		*diags = append(*diags, xqerrors.NewDiagnosticf(code, tf.Name, "function name %q does not resolve", tf.Name))
		return callbind.Signature{}, false
	}

	sig := callbind.Signature{Name: expanded[0]}
	if tf.Variadic {
		sig.Variadic = callbind.VariadicEllipsis
	}
	ok := true
	for _, tp := range tf.Params {
		if tp == nil {
			continue
		}
		param := qname.Parse(tp.Name)
		if param.IsIncomplete() || !param.Prefix.IsAbsent() || param.Local.IsWildcard() {
			*diags = append(*diags, xqerrors.Diagnostic{
				Code:    string(xqerrors.ErrSyntax),
				Message: "invalid parameter name",
				Name:    tf.Name,
				Param:   tp.Name,
			})
			ok = false
			continue
		}
		p := callbind.Param{Name: param.Expanded(qname.NamespaceEmpty)}
		if tp.Type != "" {
			t, valid := parseType(tp.Type)
			if !valid {
				*diags = append(*diags, xqerrors.Diagnostic{
					Code:    string(xqerrors.ErrSyntax),
					Message: fmt.Sprintf("invalid type %q", tp.Type),
					Name:    tf.Name,
					Param:   tp.Name,
				})
				ok = false
				continue
			}
			p.Type = &t
		}
		sig.Params = append(sig.Params, p)
	}
	if tf.Return != "" {
		t, valid := parseType(tf.Return)
		if !valid {
			*diags = append(*diags, xqerrors.NewDiagnosticf(xqerrors.ErrSyntax, tf.Name, "invalid return type %q", tf.Return))
			return callbind.Signature{}, false
		}
		sig.Return = &t
	}
	return sig, ok
}

// parseType reads a declared type. Text that degrades to a nameless type is
// rejected.
func parseType(text string) (seqtype.SequenceType, bool) {
	t := typesyntax.ParseSequenceType(text)
	return t, t.TypeName() != ""
}
