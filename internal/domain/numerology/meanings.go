package numerology

// Element is the classical element attached to a meaning.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// Meaning is the static reference entry for a reduced number.
// Traits are ordered; the first two feed the narrative analysis.
type Meaning struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Color       string   `json:"color"`
	Element     Element  `json:"element"`
	MasterTitle string   `json:"masterTitle,omitempty"`
}

var meanings = map[int]Meaning{
	1: {
		Number:      1,
		Title:       "The Leader",
		Description: "Independent, pioneering, and ambitious. Natural born leaders who forge their own path.",
		Traits:      []string{"Leadership", "Independence", "Innovation", "Determination"},
		Color:       "#FF6B6B",
		Element:     ElementFire,
	},
	2: {
		Number:      2,
		Title:       "The Peacemaker",
		Description: "Cooperative, diplomatic, and sensitive. Masters of harmony and partnership.",
		Traits:      []string{"Cooperation", "Diplomacy", "Sensitivity", "Partnership"},
		Color:       "#4ECDC4",
		Element:     ElementWater,
	},
	3: {
		Number:      3,
		Title:       "The Creative",
		Description: "Expressive, optimistic, and artistic. Natural communicators and entertainers.",
		Traits:      []string{"Creativity", "Communication", "Optimism", "Artistic"},
		Color:       "#45B7D1",
		Element:     ElementAir,
	},
	4: {
		Number:      4,
		Title:       "The Builder",
		Description: "Practical, reliable, and hardworking. Masters of organization and stability.",
		Traits:      []string{"Stability", "Organization", "Reliability", "Hard work"},
		Color:       "#96CEB4",
		Element:     ElementEarth,
	},
	5: {
		Number:      5,
		Title:       "The Explorer",
		Description: "Adventurous, freedom-loving, and versatile. Seekers of new experiences.",
		Traits:      []string{"Adventure", "Freedom", "Versatility", "Curiosity"},
		Color:       "#FFEAA7",
		Element:     ElementFire,
	},
	6: {
		Number:      6,
		Title:       "The Nurturer",
		Description: "Caring, responsible, and family-oriented. Natural healers and protectors.",
		Traits:      []string{"Nurturing", "Responsibility", "Healing", "Protection"},
		Color:       "#DDA0DD",
		Element:     ElementEarth,
	},
	7: {
		Number:      7,
		Title:       "The Seeker",
		Description: "Spiritual, analytical, and introspective. Seekers of truth and wisdom.",
		Traits:      []string{"Spirituality", "Analysis", "Wisdom", "Introspection"},
		Color:       "#A29BFE",
		Element:     ElementWater,
	},
	8: {
		Number:      8,
		Title:       "The Achiever",
		Description: "Ambitious, material-focused, and powerful. Masters of the material world.",
		Traits:      []string{"Ambition", "Power", "Material success", "Authority"},
		Color:       "#FD79A8",
		Element:     ElementEarth,
	},
	9: {
		Number:      9,
		Title:       "The Humanitarian",
		Description: "Compassionate, generous, and universal. Servants of humanity and higher causes.",
		Traits:      []string{"Compassion", "Generosity", "Universal love", "Service"},
		Color:       "#FDCB6E",
		Element:     ElementFire,
	},
}

var masterTitles = map[int]string{
	MasterEleven:      "The Intuitive",
	MasterTwentyTwo:   "The Master Builder",
	MasterThirtyThree: "The Master Teacher",
}

// MeaningFor returns the reference entry for n. Master numbers fold to the
// entry of their digit root (11->2, 22->4, 33->6) and carry a MasterTitle.
// Any key outside the table falls back to the entry for 1.
func MeaningFor(n int) Meaning {
	key := n
	if IsMaster(n) {
		key = ReduceFull(n)
	}
	m, ok := meanings[key]
	if !ok {
		m = meanings[1]
	}
	m.Traits = append([]string(nil), m.Traits...)
	if title, ok := masterTitles[n]; ok {
		m.Number = n
		m.MasterTitle = title
	}
	return m
}

// Meanings lists the nine reference entries in numeric order.
func Meanings() []Meaning {
	out := make([]Meaning, 0, len(meanings))
	for i := 1; i <= 9; i++ {
		out = append(out, MeaningFor(i))
	}
	return out
}
