// Package address decomposes the single delimited address strings found in the
// contact dataset into a fixed five-field record.
package address

import (
	"strings"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/field"
	"github.com/agentstation/roster/pkg/normalize"
)

// Components is a decomposed address. Lines and City are title-cased; PostalCode
// holds only the digits of the postal segment.
type Components struct {
	Line1      string `json:"line1" yaml:"line1"`
	Line2      string `json:"line2" yaml:"line2"`
	Line3      string `json:"line3" yaml:"line3"`
	City       string `json:"city" yaml:"city"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
}

// IsEmpty reports whether every component is empty.
func (c Components) IsEmpty() bool {
	return c == Components{}
}

// Segments reports how many delimited segments a raw address has, which is
// useful for flagging addresses that will be padded or truncated.
func Segments(raw string) int {
	if field.IsBlank(raw) {
		return 0
	}
	return strings.Count(raw, constants.AddressDelimiter) + 1
}

// Parse decomposes raw on the address delimiter. Missing trailing segments
// become empty components and segments after the fifth are ignored.
func Parse(raw string) Components {
	if field.IsBlank(raw) {
		return Components{}
	}

	var parts [constants.AddressSegments]string
	for i, seg := range strings.SplitN(raw, constants.AddressDelimiter, constants.AddressSegments+1) {
		if i >= constants.AddressSegments {
			break
		}
		parts[i] = seg
	}

	return Components{
		Line1:      normalize.TitleCase(parts[0]),
		Line2:      normalize.TitleCase(parts[1]),
		Line3:      normalize.TitleCase(parts[2]),
		City:       normalize.TitleCase(parts[3]),
		PostalCode: normalize.DigitsOnly(strings.TrimSpace(parts[4])),
	}
}

// FromField decomposes an optional cell. Absent fields yield empty components.
func FromField(f field.Field) Components {
	v, ok := f.Get()
	if !ok {
		return Components{}
	}
	return Parse(v)
}
