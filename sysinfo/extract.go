// Package sysinfo - Text extraction helpers
package sysinfo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractQuotedString returns the substring strictly between the first and
// last double quote in line, and whether such a substring exists.
//
// The line must contain two quotes with the last strictly after the first;
// otherwise ok is false. A zero-length match (`A=""`) is valid and returns
// ("", true), distinct from the not-found case.
//
// Example: ExtractQuotedString(`PRETTY_NAME="Ubuntu 24.04 LTS"`) returns
// ("Ubuntu 24.04 LTS", true).
func ExtractQuotedString(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(line, '"')
	if end <= start {
		return "", false
	}
	return line[start+1 : end], true
}

// ExtractVersionNumber pulls the first numeric version token out of free
// text: it skips forward to the first decimal digit, then accumulates
// digits and '.' separators until the first other character.
//
// Example: ExtractVersionNumber("bash, version 5.1.16(1)-release") returns
// "5.1.16". Returns "" when the text contains no digit.
func ExtractVersionNumber(text string) string {
	i := 0
	for i < len(text) && !isDigit(text[i]) {
		i++
	}
	j := i
	for j < len(text) && (isDigit(text[j]) || text[j] == '.') {
		j++
	}
	return text[i:j]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// CapitalizeFirst returns s with its first rune upper-cased and the rest
// unchanged. The empty string is returned as-is; already-capitalized input
// comes back identical.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
