package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isBlank reports whether a cell carries no text.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// capitalize upper-cases the first letter and lower-cases the rest.
// Casers keep state, so a fresh pair is built per call.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	upper := cases.Upper(language.Russian)
	lower := cases.Lower(language.Russian)
	return upper.String(s[:size]) + lower.String(s[size:])
}

// trimRight strips trailing whitespace.
func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// trimLeft strips leading whitespace.
func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// asciiDigits rewrites every decimal digit, such as fullwidth or
// Arabic-Indic ones, as its ASCII digit. Decimal digits come in
// contiguous runs of ten starting at zero.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII || !unicode.Is(unicode.Nd, r) {
			return r
		}
		zero := r
		for unicode.Is(unicode.Nd, zero-1) {
			zero--
		}
		return '0' + (r-zero)%10
	}, s)
}
