package compatibility

// Entry is a hand-curated pairing keyed "SignA-SignB". Lookups try both
// orders, so each pair is stored once.
type Entry struct {
	Score       int
	Description string
	Element     string
}

var table = map[string]Entry{
	"Aries-Leo":         {Score: 95, Description: "A fiery and passionate match! Both signs share enthusiasm and love for adventure.", Element: "fire"},
	"Aries-Sagittarius": {Score: 92, Description: "Dynamic duo with shared love for freedom and exploration.", Element: "fire"},
	"Taurus-Virgo":      {Score: 88, Description: "Grounded and practical partnership built on mutual respect and stability.", Element: "earth"},
	"Gemini-Libra":      {Score: 90, Description: "Intellectual connection with great communication and social harmony.", Element: "air"},
	"Cancer-Scorpio":    {Score: 94, Description: "Deep emotional bond with intuitive understanding and loyalty.", Element: "water"},
	"Leo-Sagittarius":   {Score: 89, Description: "Adventurous and optimistic pair with natural chemistry.", Element: "fire"},
	"Virgo-Capricorn":   {Score: 91, Description: "Practical and ambitious partnership focused on long-term goals.", Element: "earth"},
	"Libra-Aquarius":    {Score: 87, Description: "Harmonious and innovative connection with shared ideals.", Element: "air"},
	"Scorpio-Pisces":    {Score: 93, Description: "Mystical and intuitive bond with deep emotional understanding.", Element: "water"},
	"Capricorn-Taurus":  {Score: 86, Description: "Stable and reliable partnership built on trust and commitment.", Element: "earth"},
}
