package xqsem

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/xmlnames"
)

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolved(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

type stringOption struct {
	value string
	set   bool
}

type staticContextSource struct {
	fsys     fs.FS
	location string
}

// Options configures the static context an Analyzer starts from.
type Options struct {
	predeclared              boolOption
	defaultElementNamespace  stringOption
	defaultFunctionNamespace stringOption
	namespaces               []xmlnames.Binding
	staticContext            *staticContextSource
}

type resolvedOptions struct {
	predeclared              bool
	defaultElementNamespace  stringOption
	defaultFunctionNamespace stringOption
	namespaces               []xmlnames.Binding
	staticContext            *staticContextSource
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithPredeclaredNamespaces controls whether xml, xs, fn and the other
// predeclared prefixes are in scope (default true).
func (o Options) WithPredeclaredNamespaces(value bool) Options {
	o.predeclared = boolOption{value: value, set: true}
	return o
}

// WithDefaultElementNamespace sets the default element and type namespace.
// The empty string puts unprefixed element names in no namespace.
func (o Options) WithDefaultElementNamespace(uri string) Options {
	o.defaultElementNamespace = stringOption{value: uri, set: true}
	return o
}

// WithDefaultFunctionNamespace overrides the default function namespace.
func (o Options) WithDefaultFunctionNamespace(uri string) Options {
	o.defaultFunctionNamespace = stringOption{value: uri, set: true}
	return o
}

// WithNamespace binds prefix to uri. Later bindings of a prefix shadow
// earlier ones; an empty uri undeclares the prefix.
func (o Options) WithNamespace(prefix, uri string) Options {
	o.namespaces = append(slices.Clone(o.namespaces), xmlnames.Binding{Prefix: prefix, URI: uri})
	return o
}

// WithStaticContext loads a TOML static context file from fsys when the
// Analyzer is built. Its declarations are layered over the other options.
func (o Options) WithStaticContext(fsys fs.FS, location string) Options {
	o.staticContext = &staticContextSource{fsys: fsys, location: location}
	return o
}

func (o Options) withDefaults() (resolvedOptions, error) {
	for _, b := range o.namespaces {
		if !qname.IsValidNCName(b.Prefix) {
			return resolvedOptions{}, fmt.Errorf("namespace prefix %q is not an NCName", b.Prefix)
		}
		if err := xmlnames.ValidateReservedBinding(b.Prefix, b.URI); err != nil {
			return resolvedOptions{}, fmt.Errorf("namespace %s: %w", b.Prefix, err)
		}
	}
	if o.staticContext != nil {
		if o.staticContext.fsys == nil {
			return resolvedOptions{}, fmt.Errorf("static context: nil fs")
		}
		if o.staticContext.location == "" {
			return resolvedOptions{}, fmt.Errorf("static context: empty location")
		}
	}
	return resolvedOptions{
		predeclared:              o.predeclared.resolved(true),
		defaultElementNamespace:  o.defaultElementNamespace,
		defaultFunctionNamespace: o.defaultFunctionNamespace,
		namespaces:               o.namespaces,
		staticContext:            o.staticContext,
	}, nil
}
