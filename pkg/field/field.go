// Package field provides the optional cell value used by every table in roster.
//
// Spreadsheet readers produce blank cells and, when numeric columns were coerced
// to text upstream, the literal "nan". Both are converted to an absent Field at
// ingestion so the rest of the pipeline never compares against sentinel strings.
package field

import "strings"

// Sentinel is the text some exporters write for a missing numeric value.
// It is matched case-insensitively and treated as absent.
const Sentinel = "nan"

// Field is an optional, trimmed cell value. The zero Field is absent.
type Field struct {
	value   string
	present bool
}

// Parse converts raw cell text to a Field. Surrounding whitespace is removed;
// blank text and the sentinel become absent.
func Parse(raw string) Field {
	v := strings.TrimSpace(raw)
	if IsBlank(v) {
		return Field{}
	}
	return Field{value: v, present: true}
}

// Of returns a present Field holding s verbatim.
// Use Parse for untrusted input.
func Of(s string) Field {
	return Field{value: s, present: true}
}

// Absent returns the absent Field.
func Absent() Field {
	return Field{}
}

// IsBlank reports whether s carries no data: empty, whitespace only, or the sentinel.
func IsBlank(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, Sentinel)
}

// Present reports whether the field holds a value.
func (f Field) Present() bool {
	return f.present
}

// Value returns the held value, or "" when absent.
func (f Field) Value() string {
	return f.value
}

// Get returns the value and whether it is present.
func (f Field) Get() (string, bool) {
	return f.value, f.present
}

// Or returns the held value, or def when absent.
func (f Field) Or(def string) string {
	if !f.present {
		return def
	}
	return f.value
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return f.value
}
