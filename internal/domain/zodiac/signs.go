package zodiac

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MonthDay is a calendar position without a year.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (md MonthDay) ordinal() int {
	return md.Month*100 + md.Day
}

// DateRange is an inclusive span that may wrap past December 31.
type DateRange struct {
	Start MonthDay `json:"start"`
	End   MonthDay `json:"end"`
}

// Contains reports whether md falls inside the range.
func (r DateRange) Contains(md MonthDay) bool {
	start, end, pos := r.Start.ordinal(), r.End.ordinal(), md.ordinal()
	if start <= end {
		return pos >= start && pos <= end
	}
	return pos >= start || pos <= end
}

// Sign is the static reference entry for a sun sign.
// Mood, LuckyNumber and Prediction are the daily reading shown with the sign.
type Sign struct {
	Sign        string    `json:"sign"`
	Symbol      string    `json:"symbol"`
	Icon        string    `json:"icon"`
	DateRange   DateRange `json:"dateRange"`
	Dates       string    `json:"dates"`
	Element     string    `json:"element"`
	Mood        string    `json:"mood"`
	LuckyNumber int       `json:"luckyNumber"`
	Description string    `json:"description"`
	Prediction  string    `json:"prediction"`
}

var signs = []Sign{
	{
		Sign:        "Aries",
		Symbol:      "♈",
		Icon:        "ri-fire-line",
		DateRange:   span(3, 21, 4, 19),
		Dates:       "Mar 21 - Apr 19",
		Element:     "fire",
		Mood:        "Energetic",
		LuckyNumber: 7,
		Description: "The Ram - Bold, energetic, and natural leaders",
		Prediction:  "Today brings powerful energy for new beginnings. Your natural leadership qualities shine brightly, attracting opportunities for growth and success.",
	},
	{
		Sign:        "Taurus",
		Symbol:      "♉",
		Icon:        "ri-leaf-line",
		DateRange:   span(4, 20, 5, 20),
		Dates:       "Apr 20 - May 20",
		Element:     "earth",
		Mood:        "Grounded",
		LuckyNumber: 14,
		Description: "The Bull - Reliable, practical, and determined",
		Prediction:  "Stability and comfort are your themes today. Focus on building solid foundations in your personal and professional relationships.",
	},
	{
		Sign:        "Gemini",
		Symbol:      "♊",
		Icon:        "ri-wind-line",
		DateRange:   span(5, 21, 6, 20),
		Dates:       "May 21 - Jun 20",
		Element:     "air",
		Mood:        "Curious",
		LuckyNumber: 3,
		Description: "The Twins - Curious, adaptable, and communicative",
		Prediction:  "Communication flows effortlessly today. Your curiosity leads to fascinating discoveries and meaningful connections with others.",
	},
	{
		Sign:        "Cancer",
		Symbol:      "♋",
		Icon:        "ri-drop-line",
		DateRange:   span(6, 21, 7, 22),
		Dates:       "Jun 21 - Jul 22",
		Element:     "water",
		Mood:        "Intuitive",
		LuckyNumber: 21,
		Description: "The Crab - Intuitive, protective, and emotional",
		Prediction:  "Emotional intuition guides your decisions today. Trust your feelings and nurture the relationships that matter most to you.",
	},
	{
		Sign:        "Leo",
		Symbol:      "♌",
		Icon:        "ri-sun-line",
		DateRange:   span(7, 23, 8, 22),
		Dates:       "Jul 23 - Aug 22",
		Element:     "fire",
		Mood:        "Confident",
		LuckyNumber: 8,
		Description: "The Lion - Confident, creative, and generous",
		Prediction:  "Your charisma is magnetic today. Step into the spotlight and share your creative talents with the world around you.",
	},
	{
		Sign:        "Virgo",
		Symbol:      "♍",
		Icon:        "ri-seedling-line",
		DateRange:   span(8, 23, 9, 22),
		Dates:       "Aug 23 - Sep 22",
		Element:     "earth",
		Mood:        "Analytical",
		LuckyNumber: 12,
		Description: "The Virgin - Analytical, practical, and helpful",
		Prediction:  "Attention to detail serves you well today. Your methodical approach brings order to chaos and clarity to confusion.",
	},
	{
		Sign:        "Libra",
		Symbol:      "♎",
		Icon:        "ri-scales-line",
		DateRange:   span(9, 23, 10, 22),
		Dates:       "Sep 23 - Oct 22",
		Element:     "air",
		Mood:        "Harmonious",
		LuckyNumber: 6,
		Description: "The Scales - Diplomatic, fair, and social",
		Prediction:  "Balance and harmony are within reach today. Your diplomatic skills help resolve conflicts and create peaceful solutions.",
	},
	{
		Sign:        "Scorpio",
		Symbol:      "♏",
		Icon:        "ri-bug-line",
		DateRange:   span(10, 23, 11, 21),
		Dates:       "Oct 23 - Nov 21",
		Element:     "water",
		Mood:        "Intense",
		LuckyNumber: 9,
		Description: "The Scorpion - Passionate, resourceful, and brave",
		Prediction:  "Deep transformation is possible today. Embrace change and let go of what no longer serves your highest good.",
	},
	{
		Sign:        "Sagittarius",
		Symbol:      "♐",
		Icon:        "ri-bow-line",
		DateRange:   span(11, 22, 12, 21),
		Dates:       "Nov 22 - Dec 21",
		Element:     "fire",
		Mood:        "Adventurous",
		LuckyNumber: 15,
		Description: "The Archer - Adventurous, independent, and philosophical",
		Prediction:  "Adventure calls to your spirit today. Expand your horizons through learning, travel, or exploring new philosophies.",
	},
	{
		Sign:        "Capricorn",
		Symbol:      "♑",
		Icon:        "ri-mountain-line",
		DateRange:   span(12, 22, 1, 19),
		Dates:       "Dec 22 - Jan 19",
		Element:     "earth",
		Mood:        "Determined",
		LuckyNumber: 10,
		Description: "The Goat - Responsible, disciplined, and practical",
		Prediction:  "Discipline and determination lead to success today. Your practical approach turns ambitious dreams into achievable goals.",
	},
	{
		Sign:        "Aquarius",
		Symbol:      "♒",
		Icon:        "ri-water-line",
		DateRange:   span(1, 20, 2, 18),
		Dates:       "Jan 20 - Feb 18",
		Element:     "air",
		Mood:        "Innovative",
		LuckyNumber: 11,
		Description: "The Water Bearer - Progressive, independent, and humanitarian",
		Prediction:  "Innovation and originality flow through you today. Your unique perspective offers solutions others cannot see.",
	},
	{
		Sign:        "Pisces",
		Symbol:      "♓",
		Icon:        "ri-fish-line",
		DateRange:   span(2, 19, 3, 20),
		Dates:       "Feb 19 - Mar 20",
		Element:     "water",
		Mood:        "Compassionate",
		LuckyNumber: 2,
		Description: "The Fish - Compassionate, artistic, and intuitive",
		Prediction:  "Compassion and creativity merge beautifully today. Your empathetic nature brings healing and inspiration to those around you.",
	},
}

var byName = func() map[string]int {
	idx := make(map[string]int, len(signs))
	for i, s := range signs {
		idx[strings.ToLower(s.Sign)] = i
	}
	return idx
}()

func span(startMonth, startDay, endMonth, endDay int) DateRange {
	return DateRange{
		Start: MonthDay{Month: startMonth, Day: startDay},
		End:   MonthDay{Month: endMonth, Day: endDay},
	}
}

// Signs returns a copy of the twelve signs in zodiac order starting at Aries.
func Signs() []Sign {
	return append([]Sign(nil), signs...)
}

// Lookup finds a sign by name, ignoring case and surrounding space.
func Lookup(name string) (Sign, bool) {
	i, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Sign{}, false
	}
	return signs[i], true
}

// Canonical title-cases a sign name ("  sAGITTARIUS " -> "Sagittarius").
// Unknown names are title-cased as well.
func Canonical(name string) string {
	trimmed := strings.TrimSpace(name)
	if s, ok := Lookup(trimmed); ok {
		return s.Sign
	}
	return cases.Title(language.English).String(trimmed)
}
