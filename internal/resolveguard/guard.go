package resolveguard

// Pointer tracks identity-keyed values through resolution. A value is
// resolved at most once; re-entering a value that is still being resolved
// calls onCycle instead.
type Pointer[T comparable] struct {
	resolving map[T]bool
	resolved  map[T]bool
}

// NewPointer returns an empty guard.
func NewPointer[T comparable]() *Pointer[T] {
	return &Pointer[T]{
		resolving: make(map[T]bool),
		resolved:  make(map[T]bool),
	}
}

// Resolve runs resolve for value unless it already succeeded. When value is
// being resolved further up the stack, onCycle decides the outcome; a nil
// onCycle accepts the cycle. A failed resolution is not remembered.
func (g *Pointer[T]) Resolve(value T, onCycle func() error, resolve func() error) error {
	if g.resolved[value] {
		return nil
	}
	if g.resolving[value] {
		if onCycle == nil {
			return nil
		}
		return onCycle()
	}
	g.resolving[value] = true
	err := resolve()
	delete(g.resolving, value)
	if err != nil {
		return err
	}
	g.resolved[value] = true
	return nil
}
