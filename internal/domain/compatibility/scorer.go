package compatibility

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
)

const (
	// FallbackMinScore and FallbackMaxScore bound generated scores (inclusive).
	FallbackMinScore = 60
	FallbackMaxScore = 100
	// MixedElement tags pairs that are not in the curated table.
	MixedElement = "mixed"
)

// RandomSource supplies fallback scores. Implementations must be safe for
// concurrent use.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Result is the outcome of scoring two signs.
type Result struct {
	SignA       string `json:"signA"`
	SignB       string `json:"signB"`
	Score       int    `json:"score"`
	Description string `json:"description"`
	Element     string `json:"element"`
	Rating      string `json:"rating"`
	Generated   bool   `json:"generated"`
}

// Scorer looks pairs up in the curated table and generates a bounded random
// score for anything else. Generated scores are not cached.
type Scorer struct {
	rand RandomSource
}

// NewScorer builds a Scorer. A nil source uses the process-wide generator.
func NewScorer(src RandomSource) *Scorer {
	if src == nil {
		src = globalSource{}
	}
	return &Scorer{rand: src}
}

// Score rates signA against signB. The inputs are echoed back trimmed and in
// the order given.
func (s *Scorer) Score(signA, signB string) Result {
	a, b := strings.TrimSpace(signA), strings.TrimSpace(signB)
	res := Result{SignA: a, SignB: b}
	if entry, ok := Lookup(a, b); ok {
		res.Score = entry.Score
		res.Description = entry.Description
		res.Element = entry.Element
	} else {
		res.Score = FallbackMinScore + s.rand.IntN(FallbackMaxScore-FallbackMinScore+1)
		res.Description = fmt.Sprintf("%s and %s create a unique cosmic connection with %d%% compatibility.", a, b, res.Score)
		res.Element = MixedElement
		res.Generated = true
	}
	res.Rating = Rating(res.Score)
	return res
}

// Lookup tries "A-B" and then "B-A" after canonicalising both names.
func Lookup(signA, signB string) (Entry, bool) {
	a, b := zodiac.Canonical(signA), zodiac.Canonical(signB)
	if entry, ok := table[a+"-"+b]; ok {
		return entry, true
	}
	entry, ok := table[b+"-"+a]
	return entry, ok
}

// PairKey is an order-independent identifier for a pair of signs.
func PairKey(signA, signB string) string {
	pair := []string{zodiac.Canonical(signA), zodiac.Canonical(signB)}
	sort.Strings(pair)
	return pair[0] + "-" + pair[1]
}

// Rating buckets a score into a label.
func Rating(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Challenging"
	default:
		return "Difficult"
	}
}
