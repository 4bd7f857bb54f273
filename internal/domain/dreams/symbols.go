package dreams

// Symbol is a recognised dream symbol.
type Symbol struct {
	Key          string
	Icon         string
	Meaning      string
	Significance Significance
	Keywords     []string
}

var symbols = []Symbol{
	{Key: "water", Icon: "💧", Significance: SignificanceHigh,
		Meaning:  "Water represents emotions, intuition, and the subconscious mind. It suggests you're processing deep feelings.",
		Keywords: []string{"water", "ocean", "river", "sea", "lake", "rain", "swim", "swimming"}},
	{Key: "flying", Icon: "🕊️", Significance: SignificanceVeryHigh,
		Meaning:  "Flying often represents freedom, ambition, and the desire to rise above limitations.",
		Keywords: []string{"flying", "fly", "flew", "soar", "soaring", "float", "floating"}},
	{Key: "falling", Icon: "🍂", Significance: SignificanceHigh,
		Meaning:  "Falling may indicate feelings of insecurity or loss of control in your waking life.",
		Keywords: []string{"falling", "fall", "fell"}},
	{Key: "house", Icon: "🏠", Significance: SignificanceMedium,
		Meaning:  "Houses represent the self and different aspects of your personality or life.",
		Keywords: []string{"house", "home", "building", "room", "rooms"}},
	{Key: "animals", Icon: "🐾", Significance: SignificanceMedium,
		Meaning:  "Animals often represent instinctual behaviors or aspects of your personality.",
		Keywords: []string{"animal", "animals", "dog", "dogs", "cat", "cats", "bird", "birds", "horse", "wolf"}},
	{Key: "death", Icon: "🕯️", Significance: SignificanceVeryHigh,
		Meaning:  "Death typically represents transformation, endings, and new beginnings rather than literal death.",
		Keywords: []string{"death", "die", "died", "dead", "dying", "funeral"}},
	{Key: "chase", Icon: "🏃", Significance: SignificanceHigh,
		Meaning:  "Being chased suggests you're avoiding something in your waking life that needs attention.",
		Keywords: []string{"chase", "chased", "chasing", "running", "escape", "escaping"}},
	{Key: "teeth", Icon: "🦷", Significance: SignificanceMedium,
		Meaning:  "Teeth dreams often relate to communication, confidence, or concerns about appearance.",
		Keywords: []string{"teeth", "tooth"}},
	{Key: "car", Icon: "🚗", Significance: SignificanceMedium,
		Meaning:  "Cars represent your life's direction, control, and how you're navigating your path forward.",
		Keywords: []string{"car", "cars", "driving", "drive", "vehicle"}},
	{Key: "money", Icon: "💰", Significance: SignificanceLow,
		Meaning:  "Money often relates to self-worth, value, and your relationship with abundance.",
		Keywords: []string{"money", "cash", "dollar", "dollars", "coins", "gold"}},
	{Key: "snake", Icon: "🐍", Significance: SignificanceHigh,
		Meaning:  "Snakes speak of transformation, hidden wisdom, and healing.",
		Keywords: []string{"snake", "snakes", "serpent"}},
	{Key: "fire", Icon: "🔥", Significance: SignificanceHigh,
		Meaning:  "Fire signals passion, transformation, and raw energy.",
		Keywords: []string{"fire", "flame", "flames", "burning"}},
	{Key: "baby", Icon: "👶", Significance: SignificanceLow,
		Meaning:  "A baby points to new beginnings, innocence, and untapped potential.",
		Keywords: []string{"baby", "infant", "newborn"}},
	{Key: "moon", Icon: "🌙", Significance: SignificanceMedium,
		Meaning:  "The moon speaks of intuition, femininity, and the cycles of your inner life.",
		Keywords: []string{"moon", "moonlight", "moonlit"}},
	{Key: "butterfly", Icon: "🦋", Significance: SignificanceVeryHigh,
		Meaning:  "A butterfly marks transformation, rebirth, and the soul's readiness to change.",
		Keywords: []string{"butterfly", "butterflies", "caterpillar", "cocoon"}},
	{Key: "tree", Icon: "🌳", Significance: SignificanceMedium,
		Meaning:  "Trees stand for growth, stability, and your life force.",
		Keywords: []string{"tree", "trees", "forest", "woods"}},
}

var (
	symbolByKey     = make(map[string]Symbol, len(symbols))
	symbolByKeyword = make(map[string]string)
)

func init() {
	for _, s := range symbols {
		symbolByKey[s.Key] = s
		for _, kw := range s.Keywords {
			symbolByKeyword[kw] = s.Key
		}
	}
}

// Symbols returns the recognised symbols in table order.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	for i, s := range symbols {
		s.Keywords = append([]string(nil), s.Keywords...)
		out[i] = s
	}
	return out
}
