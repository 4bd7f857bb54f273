package numerology

import (
	"strconv"
	"strings"
)

// LifePath sums every decimal digit in the date text and reduces the total,
// preserving master numbers. Separators and stray characters are ignored, so
// "1990-03-25", "03/25/1990" and "19900325" all agree.
func LifePath(date string) int {
	return Reduce(textDigitSum(date))
}

// PersonalYear returns the personal year for the birth month/day in the
// target year. It always reduces to 1-9; master numbers are not kept here.
func PersonalYear(birthDate string, year int) int {
	month, day, _ := ParseMonthDay(birthDate)
	return ReduceFull(month + day + DigitSum(year))
}

// Birthday reduces the day of the month.
func Birthday(day int) int {
	return Reduce(day)
}

// Maturity combines the life path and expression numbers.
func Maturity(lifePath, expression int) int {
	return Reduce(lifePath + expression)
}

// ParseMonthDay extracts the month and day from YYYY-MM-DD or MM/DD/YYYY text.
// A component that cannot be read comes back as 0 and ok is false.
func ParseMonthDay(text string) (month, day int, ok bool) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == '/' || r == '.' || r == 'T' || r == ' '
	})
	if len(fields) < 3 {
		return 0, 0, false
	}
	var rawMonth, rawDay string
	if len(fields[0]) == 4 {
		rawMonth, rawDay = fields[1], fields[2]
	} else {
		rawMonth, rawDay = fields[0], fields[1]
	}
	month = atoiInRange(rawMonth, 12)
	day = atoiInRange(rawDay, 31)
	return month, day, month > 0 && day > 0
}

func atoiInRange(raw string, max int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > max {
		return 0
	}
	return v
}

func textDigitSum(s string) int {
	sum := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}
