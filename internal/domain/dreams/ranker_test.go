package dreams

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankOrdersBySignificance(t *testing.T) {
	got := Rank([]string{"money", "house", "flying", "water"})

	require.Len(t, got, 4)
	require.Equal(t, "flying", got[0].Symbol)
	require.Equal(t, "water", got[1].Symbol)
	require.Equal(t, "house", got[2].Symbol)
	require.Equal(t, "money", got[3].Symbol)
}

func TestRankStableForEqualTiers(t *testing.T) {
	got := Rank([]string{"snake", "water", "fire"})

	require.Equal(t, []string{"snake", "water", "fire"}, symbolsOf(got))
}

func TestRankSkipsUnknownAndDuplicates(t *testing.T) {
	got := Rank([]string{" Water ", "unicorn", "water", ""})

	require.Len(t, got, 1)
	require.Equal(t, "water", got[0].Symbol)
	require.Equal(t, SignificanceHigh, got[0].Significance)
	require.NotEmpty(t, got[0].Meaning)
}

func TestDemoHasThreeTiers(t *testing.T) {
	demo := Demo()

	require.Equal(t, []Match{
		{Symbol: "water", Icon: "💧", Meaning: "Your subconscious emotions are surfacing", Significance: SignificanceHigh},
		{Symbol: "butterfly", Icon: "🦋", Meaning: "You are undergoing a personal transformation", Significance: SignificanceVeryHigh},
		{Symbol: "moon", Icon: "🌙", Meaning: "Trust your intuition in current decisions", Significance: SignificanceMedium},
	}, demo.Symbols)
	require.Equal(t, "Transformation and Growth", demo.MainTheme)
	require.Equal(t, "Hopeful with underlying anxiety", demo.EmotionalTone)
	require.Contains(t, demo.Interpretation, "the butterfly symbolizes your readiness for transformation")
	require.Equal(t, "Focus on meditation and journaling to better understand your inner transformation. "+
		"Trust the process and be patient with yourself.", demo.Guidance)
	require.Equal(t, []string{
		"Practice reality checks throughout the day",
		"Keep a dream journal by your bedside",
		"Set intention before sleep to become lucid",
	}, demo.LucidDreamTips)
}

func TestDemoReturnsFreshSlices(t *testing.T) {
	first := Demo()
	first.Symbols[0].Meaning = "changed"
	first.LucidDreamTips[0] = "changed"

	second := Demo()
	require.Equal(t, "Your subconscious emotions are surfacing", second.Symbols[0].Meaning)
	require.Equal(t, "Practice reality checks throughout the day", second.LucidDreamTips[0])
}

func TestExtractSymbolsFindsMoonAndButterfly(t *testing.T) {
	keys := ExtractSymbols("Butterflies circled a tree under the full moon")
	require.Equal(t, []string{"butterfly", "tree", "moon"}, keys)

	got := Analyze("a moonlit lake")
	require.Equal(t, []string{"water", "moon"}, symbolsOf(got.Symbols))
	require.Empty(t, got.MainTheme)
	require.Empty(t, got.LucidDreamTips)
}

func TestExtractSymbolsWholeWords(t *testing.T) {
	keys := ExtractSymbols("I was Flying over the ocean, then fell into my old house. The ocean again!")

	require.Equal(t, []string{"flying", "water", "falling", "house"}, keys)
	require.Empty(t, ExtractSymbols("cartography and carpets"))
}

func TestAnalyzeFallsBackToGenericText(t *testing.T) {
	got := Analyze("a quiet afternoon")

	require.Empty(t, got.Symbols)
	require.NotNil(t, got.Symbols)
	require.Equal(t, GenericInterpretation, got.Interpretation)
}

func TestSignificanceTiersAreOrdered(t *testing.T) {
	tiers := Significances()
	for i := 1; i < len(tiers); i++ {
		require.Less(t, tiers[i-1], tiers[i])
	}
	for _, s := range Symbols() {
		require.True(t, s.Significance.Valid(), s.Key)
	}
}

func TestSignificanceTextForm(t *testing.T) {
	data, err := json.Marshal(Match{Symbol: "flying", Significance: SignificanceVeryHigh})
	require.NoError(t, err)
	require.Contains(t, string(data), `"significance":"Very High"`)

	var s Significance
	require.NoError(t, s.UnmarshalText([]byte(" very high ")))
	require.Equal(t, SignificanceVeryHigh, s)
	require.Error(t, s.UnmarshalText([]byte("extreme")))

	_, err = Significance(9).MarshalText()
	require.Error(t, err)
}

func symbolsOf(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Symbol)
	}
	return out
}
