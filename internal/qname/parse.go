package qname

import "strings"

// Parse reads a name in any of its lexical forms: local, prefix:local, *,
// *:local, prefix:*, Q{uri}local and Q{uri}*. It never fails: malformed input
// yields a name whose local part is absent.
func Parse(text string) QName {
	text = strings.TrimSpace(text)
	if text == "" {
		return QName{}
	}

	if rest, ok := strings.CutPrefix(text, "Q{"); ok {
		uri, local, closed := strings.Cut(rest, "}")
		if !closed {
			return QName{Namespace: NamespaceURI(strings.TrimSpace(rest)), Form: FormURIQualified}
		}
		return QName{
			Local:     parseLocal(local),
			Namespace: NamespaceURI(strings.TrimSpace(uri)),
			Form:      FormURIQualified,
		}
	}

	prefix, local, hasPrefix := SplitQName(text)
	if !hasPrefix {
		return QName{Local: parseLocal(local)}
	}
	p := parsePrefix(prefix)
	if p.IsAbsent() {
		return QName{}
	}
	return QName{Prefix: p, Local: parseLocal(local)}
}

// SplitQName splits a QName string into prefix/local without validation.
func SplitQName(name string) (prefix, local string, hasPrefix bool) {
	prefix, local, hasPrefix = strings.Cut(name, ":")
	if !hasPrefix {
		return "", name, false
	}
	return prefix, local, true
}

func parsePrefix(s string) Part {
	s = strings.TrimSpace(s)
	if s == "*" {
		return Wildcard
	}
	if !IsValidNCName(s) {
		return Part{}
	}
	return Text(s)
}

func parseLocal(s string) Part {
	s = strings.TrimSpace(s)
	if s == "*" {
		return Wildcard
	}
	if !IsValidNCName(s) {
		return Part{}
	}
	return Text(s)
}

// IsValidNCName reports whether s is a non-colonized XML name.
func IsValidNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStartChar(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
