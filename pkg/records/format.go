package records

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/field"
)

// DefaultDateLayouts are tried in order when parsing birth dates. Slash and
// dash separated dates are read day first, matching the DD/MM/YYYY output.
// This differs from month-first parsers such as pandas' to_datetime default,
// so 03/09/2012 is 3 September here. Add a layout to read month first.
var DefaultDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
}

// Excel serial dates outside this range are not treated as dates.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465 // 9999-12-31
)

// RecordNumber formats the 1-based output position.
func RecordNumber(n int) string {
	return strconv.Itoa(n) + constants.RecordNumberSuffix
}

// PadIdentifier left-pads id with zeros to width. Longer identifiers are
// returned unchanged.
func PadIdentifier(id string, width int) string {
	n := utf8.RuneCountInString(id)
	if n >= width {
		return id
	}
	return strings.Repeat(string(constants.IdentifierPad), width-n) + id
}

// ParseDate parses a birth date cell. Numeric cells are read as Excel serial
// dates; text is tried against layouts in order.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	if field.IsBlank(s) {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < minExcelSerial || serial > maxExcelSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate reformats a birth date cell as DD/MM/YYYY. The second result is
// false when a present value could not be parsed; the date is then "".
func FormatDate(f field.Field, layouts []string) (string, bool) {
	v, ok := f.Get()
	if !ok {
		return "", true
	}
	t, ok := ParseDate(v, layouts)
	if !ok {
		return "", false
	}
	return t.Format(constants.BirthDateLayout), true
}
