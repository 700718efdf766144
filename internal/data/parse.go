package data

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CutSpace splits s around the first whitespace character. The remainder is
// returned untouched, so it may itself start with or contain whitespace.
func CutSpace(s string) (before, after string, found bool) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", false
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:], true
}

// cutSpaceN splits s on its first n-1 whitespace characters into exactly n
// parts, the last one being the remainder.
func cutSpaceN(s string, n int) ([]string, bool) {
	parts := make([]string, 0, n)
	rest := s
	for len(parts) < n-1 {
		head, tail, ok := CutSpace(rest)
		if !ok {
			return nil, false
		}
		parts = append(parts, head)
		rest = tail
	}
	return append(parts, rest), true
}
