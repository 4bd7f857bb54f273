package zodiac

import (
	"strings"
	"time"
)

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "1/2/2006", time.RFC3339}

// Resolve returns the sun sign for a month/day pair, or "" when the pair is
// not a real calendar day. February 29 is accepted.
func Resolve(month, day int) string {
	if month < 1 || month > 12 || day < 1 || day > daysInMonth[month] {
		return ""
	}
	md := MonthDay{Month: month, Day: day}
	for _, s := range signs {
		if s.DateRange.Contains(md) {
			return s.Sign
		}
	}
	return ""
}

// ResolveDate parses a birth date and resolves its sign. Unparseable input
// yields "".
func ResolveDate(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return Resolve(int(ts.Month()), ts.Day())
		}
	}
	return ""
}
