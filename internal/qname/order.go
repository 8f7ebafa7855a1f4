package qname

import (
	"cmp"
	"slices"
)

// Compare orders names by namespace, local part, then prefix.
func Compare(a, b QName) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	if c := comparePart(a.Local, b.Local); c != 0 {
		return c
	}
	if c := comparePart(a.Prefix, b.Prefix); c != 0 {
		return c
	}
	return cmp.Compare(a.Form, b.Form)
}

func comparePart(a, b Part) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.text, b.text)
}

// SortedMapKeys returns map keys in deterministic order.
func SortedMapKeys[V any](m map[QName]V) []QName {
	keys := make([]QName, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, Compare)
	return keys
}

// SortAndDedupe sorts names and drops duplicates in place.
func SortAndDedupe(names []QName) []QName {
	slices.SortFunc(names, Compare)
	return slices.Compact(names)
}
