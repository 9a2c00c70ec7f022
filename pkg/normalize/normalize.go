// Package normalize provides the text normalizers applied to every imported cell:
// casing, digit extraction and the two name-splitting rules.
//
// All functions are blank-safe: empty input, whitespace-only input and the
// "nan" sentinel produce "" instead of a cased sentinel.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/roster/pkg/field"
)

// TitleCase upper-cases the first letter of every whitespace-delimited word and
// lower-cases the rest. Whitespace is kept exactly as given.
func TitleCase(s string) string {
	if field.IsBlank(s) {
		return ""
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := s[start:end]
		_, size := utf8.DecodeRuneInString(word)
		b.WriteString(upper.String(word[:size]))
		b.WriteString(lower.String(word[size:]))
		start = -1
	}

	for i, r := range s {
		if unicode.IsSpace(r) {
			flush(i)
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(s))

	return b.String()
}

// UpperCase returns s fully upper-cased.
func UpperCase(s string) string {
	if field.IsBlank(s) {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// LowerCase returns s fully lower-cased.
func LowerCase(s string) string {
	if field.IsBlank(s) {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// DigitsOnly returns the ASCII digits of s in order. No length validation is done;
// the result may be empty.
func DigitsOnly(s string) string {
	if field.IsBlank(s) {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
