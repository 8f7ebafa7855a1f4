// Package nsctx expands lexical names into namespace-qualified names.
//
// Which declaration applies to an unprefixed name depends on where the name
// occurs, expressed as a Context. Declarations are supplied by a Scope,
// nearest first; nothing is looked up from global state.
package nsctx
