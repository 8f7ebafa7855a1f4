// Package seqtype models item types and sequence types and renders their
// canonical names. The canonical name is the comparison key used across the
// resolver.
//
// ItemType is a closed union: each variant is a struct in this package and
// Name holds one case per variant. Construction never fails; incomplete input
// produces values whose names render as the empty string.
package seqtype
