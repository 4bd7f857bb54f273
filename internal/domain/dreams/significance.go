package dreams

import (
	"fmt"
	"strings"
)

// Significance is an ordered tier: Low < Medium < High < Very High.
type Significance int

const (
	SignificanceLow Significance = iota + 1
	SignificanceMedium
	SignificanceHigh
	SignificanceVeryHigh
)

var significanceNames = map[Significance]string{
	SignificanceLow:      "Low",
	SignificanceMedium:   "Medium",
	SignificanceHigh:     "High",
	SignificanceVeryHigh: "Very High",
}

// Significances lists every tier in ascending order.
func Significances() []Significance {
	return []Significance{SignificanceLow, SignificanceMedium, SignificanceHigh, SignificanceVeryHigh}
}

func (s Significance) String() string {
	if name, ok := significanceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Significance(%d)", int(s))
}

// Valid reports whether s is one of the four tiers.
func (s Significance) Valid() bool {
	_, ok := significanceNames[s]
	return ok
}

// ParseSignificance accepts the display names case-insensitively.
func ParseSignificance(raw string) (Significance, bool) {
	for s, name := range significanceNames {
		if strings.EqualFold(strings.TrimSpace(raw), name) {
			return s, true
		}
	}
	return 0, false
}

// MarshalText encodes the display name.
func (s Significance) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid significance %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes the display name.
func (s *Significance) UnmarshalText(text []byte) error {
	parsed, ok := ParseSignificance(string(text))
	if !ok {
		return fmt.Errorf("unknown significance %q", string(text))
	}
	*s = parsed
	return nil
}
