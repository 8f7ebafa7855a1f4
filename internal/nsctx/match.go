package nsctx

import "github.com/jacoelho/xqsem/internal/qname"

// Matches reports whether the expanded name test allows the expanded name.
// Tests may use wildcards: *, *:local, prefix:* and Q{uri}*.
func Matches(test, name qname.QName) bool {
	if test.IsIncomplete() || name.IsIncomplete() {
		return false
	}
	if !allowsNamespace(test, name) {
		return false
	}
	if test.Local.IsWildcard() {
		return true
	}
	return name.Local.IsText() && test.Local.Value() == name.Local.Value()
}

func allowsNamespace(test, name qname.QName) bool {
	if test.Prefix.IsWildcard() {
		return true
	}
	if !test.HasNamespace() {
		// A bare * never goes through expansion.
		return test.Prefix.IsAbsent() && test.Local.IsWildcard()
	}
	return name.HasNamespace() && test.Namespace == name.Namespace
}
