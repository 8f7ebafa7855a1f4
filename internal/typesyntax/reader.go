package typesyntax

import (
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/xqsem/internal/qname"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokName
	tokString
	tokNumber
	tokPunct
)

type token struct {
	text string
	kind tokenKind
}

func (t token) is(punct string) bool {
	return t.kind == tokPunct && t.text == punct
}

type typeReader struct {
	input  string
	pos    int
	peeked *token
}

func newReader(input string) *typeReader {
	return &typeReader{input: input}
}

func (r *typeReader) peek() token {
	if r.peeked == nil {
		tok := r.scan()
		r.peeked = &tok
	}
	return *r.peeked
}

func (r *typeReader) next() token {
	tok := r.peek()
	r.peeked = nil
	return tok
}

// accept consumes the punctuation token if it is next.
func (r *typeReader) accept(punct string) bool {
	if r.peek().is(punct) {
		r.next()
		return true
	}
	return false
}

// acceptName consumes the name token if it is next.
func (r *typeReader) acceptName(name string) bool {
	tok := r.peek()
	if tok.kind == tokName && tok.text == name {
		r.next()
		return true
	}
	return false
}

// followedByParen reports whether the next non-space byte after the peeked
// token is an opening parenthesis.
func (r *typeReader) followedByParen() bool {
	r.peek()
	i := r.pos
	for i < len(r.input) && isSpace(r.input[i]) {
		i++
	}
	return i < len(r.input) && r.input[i] == '('
}

func (r *typeReader) skipSpace() {
	for r.pos < len(r.input) && isSpace(r.input[r.pos]) {
		r.pos++
	}
}

func (r *typeReader) scan() token {
	r.skipSpace()
	if r.pos >= len(r.input) {
		return token{kind: tokEOF}
	}
	start := r.pos
	ch := r.input[r.pos]

	switch {
	case ch == '"' || ch == '\'':
		return r.scanString(ch)
	case ch >= '0' && ch <= '9':
		for r.pos < len(r.input) && (isDigit(r.input[r.pos]) || r.input[r.pos] == '.') {
			r.pos++
		}
		return token{text: r.input[start:r.pos], kind: tokNumber}
	case strings.HasPrefix(r.input[r.pos:], "..."):
		r.pos += 3
		return token{text: "...", kind: tokPunct}
	case strings.HasPrefix(r.input[r.pos:], ".."):
		r.pos += 2
		return token{text: "..", kind: tokPunct}
	case strings.HasPrefix(r.input[r.pos:], "Q{"):
		return r.scanBracedName()
	case ch == '*':
		r.pos++
		if r.pos < len(r.input) && r.input[r.pos] == ':' && r.nameStartsAt(r.pos+1) {
			r.pos++
			r.scanNCName()
			return token{text: r.input[start:r.pos], kind: tokName}
		}
		return token{text: "*", kind: tokPunct}
	case r.nameStartsAt(r.pos):
		return r.scanName()
	}
	_, size := utf8.DecodeRuneInString(r.input[r.pos:])
	r.pos += size
	return token{text: r.input[start:r.pos], kind: tokPunct}
}

// scanName reads an NCName or prefix:local, prefix:* and the dangling prefix:.
func (r *typeReader) scanName() token {
	start := r.pos
	r.scanNCName()
	if r.pos < len(r.input) && r.input[r.pos] == ':' {
		switch {
		case r.nameStartsAt(r.pos + 1):
			r.pos++
			r.scanNCName()
		case r.pos+1 < len(r.input) && r.input[r.pos+1] == '*':
			r.pos += 2
		default:
			r.pos++
		}
	}
	return token{text: r.input[start:r.pos], kind: tokName}
}

func (r *typeReader) scanBracedName() token {
	start := r.pos
	end := strings.IndexByte(r.input[r.pos:], '}')
	if end < 0 {
		r.pos = len(r.input)
		return token{text: r.input[start:], kind: tokName}
	}
	r.pos += end + 1
	if r.pos < len(r.input) && r.input[r.pos] == '*' {
		r.pos++
	} else if r.nameStartsAt(r.pos) {
		r.scanNCName()
	}
	return token{text: r.input[start:r.pos], kind: tokName}
}

func (r *typeReader) scanNCName() {
	for r.pos < len(r.input) {
		if strings.HasPrefix(r.input[r.pos:], "..") {
			return
		}
		c, size := utf8.DecodeRuneInString(r.input[r.pos:])
		if c == ':' || !isNameRune(c) {
			return
		}
		r.pos += size
	}
}

func (r *typeReader) nameStartsAt(i int) bool {
	if i >= len(r.input) {
		return false
	}
	c, _ := utf8.DecodeRuneInString(r.input[i:])
	return qname.IsValidNCName(string(c))
}

func (r *typeReader) scanString(quote byte) token {
	r.pos++
	var b strings.Builder
	for r.pos < len(r.input) {
		ch := r.input[r.pos]
		if ch == quote {
			if r.pos+1 < len(r.input) && r.input[r.pos+1] == quote {
				b.WriteByte(quote)
				r.pos += 2
				continue
			}
			r.pos++
			return token{text: b.String(), kind: tokString}
		}
		b.WriteByte(ch)
		r.pos++
	}
	return token{text: b.String(), kind: tokString}
}

func isNameRune(c rune) bool {
	return qname.IsValidNCName("a" + string(c))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
