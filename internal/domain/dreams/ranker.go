package dreams

import (
	"sort"
	"strings"
	"unicode"
)

// GenericInterpretation is returned when no symbol is recognised.
const GenericInterpretation = "Your dream contains rich symbolic content. Dreams are personal messages from your subconscious, offering insights into your emotions, desires, and life path. Consider the feelings and themes in your dream for deeper understanding."

// Match is one ranked symbol in an analysis.
type Match struct {
	Symbol       string       `json:"symbol"`
	Icon         string       `json:"icon"`
	Meaning      string       `json:"meaning"`
	Significance Significance `json:"significance"`
}

// Analysis is the result of reading a dream. The theme, tone, guidance and
// lucid dreaming tips are only filled for the demo reading.
type Analysis struct {
	MainTheme      string   `json:"mainTheme,omitempty"`
	EmotionalTone  string   `json:"emotionalTone,omitempty"`
	Symbols        []Match  `json:"symbols"`
	Interpretation string   `json:"interpretation"`
	Guidance       string   `json:"guidance,omitempty"`
	LucidDreamTips []string `json:"lucidDreamTips,omitempty"`
}

// Rank resolves symbol keys to matches, most significant first. Unknown keys
// are skipped, duplicates collapse, and ties keep input order.
func Rank(keys []string) []Match {
	seen := make(map[string]struct{}, len(keys))
	out := make([]Match, 0, len(keys))
	for _, raw := range keys {
		key := strings.ToLower(strings.TrimSpace(raw))
		sym, ok := symbolByKey[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Match{
			Symbol:       sym.Key,
			Icon:         sym.Icon,
			Meaning:      sym.Meaning,
			Significance: sym.Significance,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Significance > out[j].Significance
	})
	return out
}

// Demo returns the fixed three-symbol reading shown to visitors. Symbols keep
// the order they are presented in rather than being ranked.
func Demo() Analysis {
	demo := Analysis{
		MainTheme:      "Transformation and Growth",
		EmotionalTone:  "Hopeful with underlying anxiety",
		Symbols:        make([]Match, 0, len(demoReadings)),
		Interpretation: "This dream suggests you are in a period of significant personal growth. The recurring water imagery indicates deep emotional processing, while the butterfly symbolizes your readiness for transformation. Your subconscious is encouraging you to embrace change.",
		Guidance:       "Focus on meditation and journaling to better understand your inner transformation. Trust the process and be patient with yourself.",
		LucidDreamTips: []string{
			"Practice reality checks throughout the day",
			"Keep a dream journal by your bedside",
			"Set intention before sleep to become lucid",
		},
	}
	for _, r := range demoReadings {
		sym := symbolByKey[r.key]
		demo.Symbols = append(demo.Symbols, Match{
			Symbol:       sym.Key,
			Icon:         sym.Icon,
			Meaning:      r.meaning,
			Significance: r.significance,
		})
	}
	return demo
}

var demoReadings = []struct {
	key          string
	meaning      string
	significance Significance
}{
	{"water", "Your subconscious emotions are surfacing", SignificanceHigh},
	{"butterfly", "You are undergoing a personal transformation", SignificanceVeryHigh},
	{"moon", "Trust your intuition in current decisions", SignificanceMedium},
}

// ExtractSymbols finds symbol keys mentioned in free text by whole-word
// keyword match, in order of first mention.
func ExtractSymbols(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	seen := make(map[string]struct{})
	var keys []string
	for _, w := range words {
		key, ok := symbolByKeyword[w]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Analyze ranks the symbols found in a dream description.
func Analyze(text string) Analysis {
	return newAnalysis(Rank(ExtractSymbols(text)))
}

func newAnalysis(matches []Match) Analysis {
	if len(matches) == 0 {
		return Analysis{Symbols: []Match{}, Interpretation: GenericInterpretation}
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m.Meaning)
	}
	return Analysis{Symbols: matches, Interpretation: strings.Join(parts, " ")}
}
