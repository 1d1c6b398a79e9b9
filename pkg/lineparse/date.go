package lineparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Two date grammars: d/m/yyyy (day-first, "/" or "-") and yyyy-m-d (ISO order).
var dateRe = regexp.MustCompile(
	`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$` +
		`|^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})$`,
)

// parseDate tries to parse a date string in the accepted formats.
// Calendar-invalid values (month 13, Feb 30, ...) are rejected: the
// caller must treat the field as ordinary title text, not a date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	var year, month, day int
	if m[1] != "" {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		year, _ = strconv.Atoi(m[4])
		month, _ = strconv.Atoi(m[5])
		day, _ = strconv.Atoi(m[6])
	}
	return makeDate(year, month, day)
}

// makeDate builds a UTC midnight date, rejecting values that time.Date
// would silently normalize (e.g. 30/02 becoming 01/03).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
