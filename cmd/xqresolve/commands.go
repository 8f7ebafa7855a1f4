package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"github.com/jacoelho/xqsem"
	"github.com/jacoelho/xqsem/internal/catalog"
	"github.com/jacoelho/xqsem/internal/nsctx"
	"github.com/jacoelho/xqsem/internal/occurrence"
	"github.com/jacoelho/xqsem/internal/sigdb"
)

var contextNames = []string{"element", "type", "function", "function-decl", "prefixed", "none", "undefined"}

func loadAnalyzer(config, db string) (*xqsem.Analyzer, func(), error) {
	opts := xqsem.NewOptions()
	if config != "" {
		opts = opts.WithStaticContext(os.DirFS(filepath.Dir(config)), filepath.Base(config))
	}
	if db == "" {
		a, err := xqsem.NewAnalyzer(opts)
		return a, func() {}, err
	}
	store, err := sigdb.Open(db)
	if err != nil {
		return nil, nil, err
	}
	a, err := xqsem.NewAnalyzer(opts, store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return a, func() { store.Close() }, nil
}

func execExpandCommand(result *olive.ArgParseResult, out, errOut printer) int {
	text, _ := result.PrimaryArg()
	ctxName := stringArg(result, "context")
	ctx, ok := xqsem.ParseContext(ctxName)
	if !ok {
		_ = errOut.error("Usage Error", fmt.Errorf("unknown context %q", ctxName))
		return 2
	}

	a, closeFn, err := loadAnalyzer(stringArg(result, "config"), "")
	if err != nil {
		_ = errOut.report("Config Error", err)
		return 1
	}
	defer closeFn()

	names := a.Expand(xqsem.ParseQName(text), ctx)
	if len(names) == 0 {
		_ = errOut.warn("Unresolved", fmt.Sprintf("%s does not expand in %s", text, ctx))
		return 1
	}
	if err := out.info("Expanded", names[0].Clark()); err != nil {
		return 1
	}
	return 0
}

func execTypeCommand(result *olive.ArgParseResult, out printer) int {
	text, _ := result.PrimaryArg()
	t := xqsem.ParseSequenceType(text)
	name := t.TypeName()
	if name == "" {
		_ = out.warn("Incomplete", fmt.Sprintf("%q does not name a type", text))
		return 1
	}
	if err := out.info("Type", name); err != nil {
		return 1
	}
	if err := out.line("bounds:", boundsText(t.LowerBound(), t.UpperBound())); err != nil {
		return 1
	}
	return 0
}

func boundsText(lower, upper uint32) string {
	if upper == occurrence.Unbounded {
		return fmt.Sprintf("%d..unbounded", lower)
	}
	return fmt.Sprintf("%d..%d", lower, upper)
}

func execBindCommand(result *olive.ArgParseResult, out, errOut printer) int {
	callee, _ := result.PrimaryArg()
	call, err := parseCallArgs(stringArg(result, "args"))
	if err != nil {
		_ = errOut.error("Usage Error", err)
		return 2
	}
	if arrow := stringArg(result, "arrow"); arrow != "" {
		call = xqsem.Arrow(arrow, call)
	}

	a, closeFn, err := loadAnalyzer(stringArg(result, "config"), stringArg(result, "db"))
	if err != nil {
		_ = errOut.report("Config Error", err)
		return 1
	}
	defer closeFn()

	res, err := xqsem.ResolveCall(a, xqsem.ParseQName(callee), call, nil)
	if res.Bindings != nil {
		if writeErr := out.info("Signature", res.Signature.String()); writeErr != nil {
			return 1
		}
		for _, b := range res.Bindings {
			if writeErr := out.line(bindingText(b)); writeErr != nil {
				return 1
			}
		}
	}
	if err != nil {
		_ = errOut.report("Call Error", err)
		return 1
	}
	return 0
}

func bindingText(b xqsem.Binding[string]) string {
	var text string
	switch b.Kind {
	case xqsem.Bound:
		text = fmt.Sprintf("$%s := %s", b.Param.Name, b.Value)
	case xqsem.Concatenation:
		text = fmt.Sprintf("$%s := (%s)", b.Param.Name, strings.Join(b.Values, ", "))
	case xqsem.Empty:
		text = fmt.Sprintf("$%s := ()", b.Param.Name)
	default:
		text = fmt.Sprintf("$%s missing", b.Param.Name)
	}
	if b.Type != nil {
		text += " as " + b.Type.TypeName()
	}
	return text
}

// parseCallArgs splits text on top-level commas. An argument written
// name:=value is a keyword argument.
func parseCallArgs(text string) (xqsem.Call[string], error) {
	var call xqsem.Call[string]
	if strings.TrimSpace(text) == "" {
		return call, nil
	}
	for _, arg := range splitTopLevel(text) {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return call, fmt.Errorf("empty argument in %q", text)
		}
		if name, value, ok := strings.Cut(arg, ":="); ok && isKeywordName(strings.TrimSpace(name)) {
			call.Keywords = append(call.Keywords, xqsem.Keyword[string]{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
			continue
		}
		if len(call.Keywords) > 0 {
			return call, fmt.Errorf("positional argument %q after keyword arguments", arg)
		}
		call.Positional = append(call.Positional, arg)
	}
	return call, nil
}

func isKeywordName(name string) bool {
	q := xqsem.ParseQName(name)
	return !q.IsIncomplete() && q.Prefix.IsAbsent() && q.Local.IsText() && !q.HasNamespace()
}

func splitTopLevel(text string) []string {
	var (
		parts []string
		depth int
		quote rune
		start int
	)
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}

func execCheckCommand(result *olive.ArgParseResult, out, errOut printer) int {
	path, _ := result.PrimaryArg()
	return checkStaticContext(path, out, errOut)
}

func checkStaticContext(path string, out, errOut printer) int {
	sc, err := catalog.LoadFile(path, nsctx.Predeclared())
	if err != nil {
		_ = errOut.report("Config Error", err)
		return 1
	}
	if err := out.info("Loaded", fmt.Sprintf("%s: %d functions", path, sc.Catalog.Len())); err != nil {
		return 1
	}
	for _, b := range nsctx.InScope(sc.Scope) {
		if err := out.line(fmt.Sprintf("namespace %s = %q", b.Prefix, b.Namespace)); err != nil {
			return 1
		}
	}
	for sig := range sc.Catalog.All() {
		if err := out.line("function " + sig.String()); err != nil {
			return 1
		}
	}
	return 0
}

func execImportCommand(result *olive.ArgParseResult, out, errOut printer) int {
	path, _ := result.PrimaryArg()
	db := stringArg(result, "db")

	sc, err := catalog.LoadFile(path, nsctx.Predeclared())
	if err != nil {
		_ = errOut.report("Config Error", err)
		return 1
	}
	store, err := sigdb.Open(db)
	if err != nil {
		_ = errOut.error("Database Error", err)
		return 1
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Import(ctx, sc.Catalog.All()); err != nil {
		_ = errOut.error("Database Error", err)
		return 1
	}
	n, err := store.Count(ctx)
	if err != nil {
		_ = errOut.error("Database Error", err)
		return 1
	}
	if err := out.info("Imported", fmt.Sprintf("%d functions into %s (%d stored)", sc.Catalog.Len(), db, n)); err != nil {
		return 1
	}
	return 0
}
