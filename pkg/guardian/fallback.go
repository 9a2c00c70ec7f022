package guardian

import "strings"

// Fallback is a set of field groups where guardian 2's data was promoted into
// Responsible1 because guardian 1 had none.
type Fallback uint8

// Field groups.
const (
	FallbackName Fallback = 1 << iota
	FallbackAddress
	FallbackEmail
	FallbackPhone
)

// Groups lists every field group in output order.
var Groups = []Fallback{FallbackName, FallbackAddress, FallbackEmail, FallbackPhone}

// Has reports whether group is in the set.
func (f Fallback) Has(group Fallback) bool {
	return f&group != 0
}

// Name returns the group name of a single-group value.
func (f Fallback) Name() string {
	switch f {
	case FallbackName:
		return "name"
	case FallbackAddress:
		return "address"
	case FallbackEmail:
		return "email"
	case FallbackPhone:
		return "phone"
	default:
		return ""
	}
}

// String lists the groups in the set, comma separated.
func (f Fallback) String() string {
	var names []string
	for _, g := range Groups {
		if f.Has(g) {
			names = append(names, g.Name())
		}
	}
	return strings.Join(names, ",")
}
