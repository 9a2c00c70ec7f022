package normalize

import (
	"strings"
	"unicode"

	"github.com/agentstation/roster/pkg/field"
)

// SplitName splits a "Given Surname..." full name at the first whitespace.
// Everything after it is the surname, so multi-word surnames stay together.
// A single token is treated as a surname with no first name.
func SplitName(full string) (first, last string) {
	if field.IsBlank(full) {
		return "", ""
	}
	full = strings.TrimSpace(full)

	i := strings.IndexFunc(full, unicode.IsSpace)
	if i < 0 {
		return "", UpperCase(full)
	}
	return TitleCase(full[:i]), UpperCase(strings.TrimSpace(full[i:]))
}

// SplitPersonName splits a "SURNAME, Given" person name at the first comma.
// Without a comma the whole value is the surname.
func SplitPersonName(full string) (last, first string) {
	if field.IsBlank(full) {
		return "", ""
	}
	before, after, _ := strings.Cut(full, ",")
	return UpperCase(strings.TrimSpace(before)), TitleCase(strings.TrimSpace(after))
}
