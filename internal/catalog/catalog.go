package catalog

import (
	"iter"
	"slices"

	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/qname"
)

// Catalog is an in-memory function declaration table keyed by expanded name.
// It is safe for concurrent readers once populated; Add is not synchronized.
type Catalog struct {
	byName map[qname.QName][]callbind.Signature
}

// New returns a catalog holding sigs.
func New(sigs ...callbind.Signature) *Catalog {
	c := &Catalog{byName: make(map[qname.QName][]callbind.Signature, len(sigs))}
	for _, sig := range sigs {
		c.Add(sig)
	}
	return c
}

// Add registers sig under its expanded name. Signatures without a namespace
// are stored under the no-namespace key. A signature with the same declared
// arity replaces the earlier one.
func (c *Catalog) Add(sig callbind.Signature) {
	if c.byName == nil {
		c.byName = make(map[qname.QName][]callbind.Signature)
	}
	key := sig.Name.Identity()
	sigs := c.byName[key]
	for i := range sigs {
		if sigs[i].DeclaredArity() == sig.DeclaredArity() && sigs[i].Variadic == sig.Variadic {
			sigs[i] = sig
			return
		}
	}
	sigs = append(sigs, sig)
	slices.SortStableFunc(sigs, func(a, b callbind.Signature) int {
		return a.DeclaredArity() - b.DeclaredArity()
	})
	c.byName[key] = sigs
}

// Signatures returns every signature declared under name, ordered by declared
// arity. The arity is left to callbind.Select.
func (c *Catalog) Signatures(name qname.QName, _ int) []callbind.Signature {
	if c == nil {
		return nil
	}
	return slices.Clone(c.byName[name.Identity()])
}

// Names returns the declared function names in sorted order.
func (c *Catalog) Names() []qname.QName {
	if c == nil {
		return nil
	}
	return qname.SortedMapKeys(c.byName)
}

// All yields every signature, grouped by sorted name.
func (c *Catalog) All() iter.Seq[callbind.Signature] {
	return func(yield func(callbind.Signature) bool) {
		for _, name := range c.Names() {
			for _, sig := range c.byName[name] {
				if !yield(sig) {
					return
				}
			}
		}
	}
}

// Len reports the number of signatures.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, sigs := range c.byName {
		n += len(sigs)
	}
	return n
}
