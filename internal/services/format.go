package services

import (
	"strings"
	"time"
)

// normalizeName prepares a name for a case-insensitive uniqueness comparison:
// surrounding whitespace is trimmed and the result upper-cased.
func normalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Formatter carries the explicit formatting locale threaded through the query
// services instead of ambient thread state.
type Formatter struct {
	DateLayout string
	Location   *time.Location
}

// DefaultFormatter formats dates as en-US short dates in UTC.
func DefaultFormatter() Formatter {
	return Formatter{DateLayout: "01/02/2006", Location: time.UTC}
}

// FormatDate renders a timestamp for display fields.
func (f Formatter) FormatDate(t time.Time) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := f.DateLayout
	if layout == "" {
		layout = "01/02/2006"
	}
	return t.In(loc).Format(layout)
}

// JoinNames flattens related display names into a single field.
func (f Formatter) JoinNames(names []string) string {
	return strings.Join(names, ", ")
}
