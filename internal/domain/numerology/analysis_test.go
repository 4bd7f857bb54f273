package numerology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeaningFor(t *testing.T) {
	for n := 1; n <= 9; n++ {
		m := MeaningFor(n)
		require.Equal(t, n, m.Number)
		require.Len(t, m.Traits, 4)
		require.NotEmpty(t, m.Title)
		require.Empty(t, m.MasterTitle)
	}

	master := MeaningFor(11)
	require.Equal(t, 11, master.Number)
	require.Equal(t, "The Peacemaker", master.Title)
	require.Equal(t, "The Intuitive", master.MasterTitle)

	require.Equal(t, "The Builder", MeaningFor(22).Title)
	require.Equal(t, "The Nurturer", MeaningFor(33).Title)

	fallback := MeaningFor(0)
	require.Equal(t, "The Leader", fallback.Title)
	require.Equal(t, 1, fallback.Number)
}

func TestMeaningTable(t *testing.T) {
	cases := []struct {
		number  int
		title   string
		traits  []string
		color   string
		element Element
	}{
		{1, "The Leader", []string{"Leadership", "Independence", "Innovation", "Determination"}, "#FF6B6B", ElementFire},
		{2, "The Peacemaker", []string{"Cooperation", "Diplomacy", "Sensitivity", "Partnership"}, "#4ECDC4", ElementWater},
		{3, "The Creative", []string{"Creativity", "Communication", "Optimism", "Artistic"}, "#45B7D1", ElementAir},
		{4, "The Builder", []string{"Stability", "Organization", "Reliability", "Hard work"}, "#96CEB4", ElementEarth},
		{5, "The Explorer", []string{"Adventure", "Freedom", "Versatility", "Curiosity"}, "#FFEAA7", ElementFire},
		{6, "The Nurturer", []string{"Nurturing", "Responsibility", "Healing", "Protection"}, "#DDA0DD", ElementEarth},
		{7, "The Seeker", []string{"Spirituality", "Analysis", "Wisdom", "Introspection"}, "#A29BFE", ElementWater},
		{8, "The Achiever", []string{"Ambition", "Power", "Material success", "Authority"}, "#FD79A8", ElementEarth},
		{9, "The Humanitarian", []string{"Compassion", "Generosity", "Universal love", "Service"}, "#FDCB6E", ElementFire},
	}
	for _, tc := range cases {
		m := MeaningFor(tc.number)
		require.Equal(t, tc.title, m.Title)
		require.Equal(t, tc.traits, m.Traits)
		require.Equal(t, tc.color, m.Color)
		require.Equal(t, tc.element, m.Element)
	}
	require.Equal(t, "Adventurous, freedom-loving, and versatile. Seekers of new experiences.", MeaningFor(5).Description)
}

func TestMeaningForReturnsCopies(t *testing.T) {
	m := MeaningFor(1)
	m.Traits[0] = "mutated"
	require.Equal(t, "Leadership", MeaningFor(1).Traits[0])
}

func TestMeaningsOrdered(t *testing.T) {
	list := Meanings()
	require.Len(t, list, 9)
	for i, m := range list {
		require.Equal(t, i+1, m.Number)
	}
}

func TestBuildProfile(t *testing.T) {
	p := BuildProfile(" JOHN SMITH ", "1990-03-25", 2024)
	require.Equal(t, "JOHN SMITH", p.FullName)
	require.Equal(t, 11, p.LifePathNumber)
	require.Equal(t, 9, p.PersonalYearNumber)
	require.Equal(t, 7, p.BirthdayNumber)
	require.Equal(t, 8, p.ExpressionNumber)
	require.Equal(t, 6, p.SoulUrgeNumber)
	require.Equal(t, 11, p.PersonalityNumber)
	require.Equal(t, 1, p.MaturityNumber)
}

func TestBuildProfileNameOnly(t *testing.T) {
	p := BuildProfile("JOHN SMITH", "", 2024)
	require.Zero(t, p.LifePathNumber)
	require.Zero(t, p.PersonalYearNumber)
	require.Zero(t, p.MaturityNumber)
	require.Equal(t, 8, p.ExpressionNumber)
}

func TestAnalyze(t *testing.T) {
	text := Analyze(BuildProfile("JOHN SMITH", "1990-03-25", 2024))
	require.Contains(t, text, "Life Path 11")
	require.Contains(t, text, "The Intuitive")
	require.Contains(t, text, "marked by cooperation and diplomacy")
	require.Contains(t, text, "Water element")
	require.Contains(t, text, "Expression 8")
	require.Contains(t, text, "The Achiever")
	require.Contains(t, text, "2024 is a Personal Year 9")
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	require.Empty(t, Analyze(Profile{}))
}

func TestAnalyzeName(t *testing.T) {
	nums := Name("John Smith")
	require.Equal(t, NameNumbers{Expression: 8, SoulUrge: 6, Personality: 11}, nums)

	got := AnalyzeName("  John Smith ", nums)
	require.Equal(t, "John, your name carries powerful numerological vibrations that shape your life path and personality. "+
		"The combination of Expression 8, Soul Urge 6, and Personality 11 creates a unique cosmic signature that influences your destiny.", got.Overview)
	require.Equal(t, []string{
		"Natural ambition abilities from your Expression Number",
		"Deep responsibility desires driving your soul's purpose",
		"Cooperation personality that others immediately recognize",
	}, got.Strengths)
	require.Equal(t, []string{
		"Balancing your earth expression energy",
		"Aligning outer personality with inner soul urge desires",
		"Managing the intensity of multiple numerological influences",
	}, got.Challenges)
	require.Equal(t, "Focus on integrating your the achiever expression with your the nurturer soul purpose. "+
		"Your the intuitive personality is the bridge between your inner and outer worlds.", got.Guidance)
}

func TestAnalyzeNameSingleDigits(t *testing.T) {
	got := AnalyzeName("Ann", NameNumbers{Expression: 5, SoulUrge: 1, Personality: 3})
	require.True(t, strings.HasPrefix(got.Overview, "Ann, "))
	require.Equal(t, "Natural adventure abilities from your Expression Number", got.Strengths[0])
	require.Equal(t, "Deep independence desires driving your soul's purpose", got.Strengths[1])
	require.Equal(t, "Creativity personality that others immediately recognize", got.Strengths[2])
	require.Equal(t, "Balancing your fire expression energy", got.Challenges[0])
	require.Contains(t, got.Guidance, "your the explorer expression with your the leader soul purpose")
	require.Contains(t, got.Guidance, "Your the creative personality")
}
