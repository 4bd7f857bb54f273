package numerology

// Config holds runtime knobs for the numerology service.
type Config struct {
	ProfileCacheSize int
}

// Profile is the full set of numbers derived from a name and birth date.
// Every number passes through Reduce or ReduceFull.
type Profile struct {
	FullName           string `json:"fullName,omitempty"`
	BirthDate          string `json:"birthDate,omitempty"`
	TargetYear         int    `json:"targetYear,omitempty"`
	LifePathNumber     int    `json:"lifePathNumber,omitempty"`
	PersonalYearNumber int    `json:"personalYearNumber,omitempty"`
	BirthdayNumber     int    `json:"birthdayNumber,omitempty"`
	ExpressionNumber   int    `json:"expressionNumber,omitempty"`
	SoulUrgeNumber     int    `json:"soulUrgeNumber,omitempty"`
	PersonalityNumber  int    `json:"personalityNumber,omitempty"`
	MaturityNumber     int    `json:"maturityNumber,omitempty"`
}

// ProfileRequest asks for a combined name + birth date reading.
type ProfileRequest struct {
	FullName  string `json:"fullName" validate:"required,max=200"`
	BirthDate string `json:"birthDate" validate:"required,max=32"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=9999"`
}

// ProfileResponse bundles the profile with the looked-up meanings and summary.
type ProfileResponse struct {
	Profile  Profile         `json:"profile"`
	Meanings ProfileMeanings `json:"meanings"`
	Analysis string          `json:"analysis"`
}

// ProfileMeanings exposes the reference entry behind each headline number.
type ProfileMeanings struct {
	LifePath     *Meaning `json:"lifePath,omitempty"`
	PersonalYear *Meaning `json:"personalYear,omitempty"`
	Expression   *Meaning `json:"expression,omitempty"`
	SoulUrge     *Meaning `json:"soulUrge,omitempty"`
	Personality  *Meaning `json:"personality,omitempty"`
}

// LifePathRequest carries a birth date as text.
type LifePathRequest struct {
	BirthDate string `json:"birthDate" validate:"required,max=32"`
}

// NumberResponse is a single reduced number with its meaning.
type NumberResponse struct {
	Number   int     `json:"number"`
	IsMaster bool    `json:"isMaster"`
	Meaning  Meaning `json:"meaning"`
}

// PersonalYearRequest carries a birth date and an optional target year.
type PersonalYearRequest struct {
	BirthDate string `json:"birthDate" validate:"required,max=32"`
	Year      int    `json:"year,omitempty" validate:"omitempty,min=1,max=9999"`
}

// PersonalYearResponse reports the personal year for Year.
type PersonalYearResponse struct {
	Year    int     `json:"year"`
	Number  int     `json:"number"`
	Meaning Meaning `json:"meaning"`
}

// NameRequest carries a full name.
type NameRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
}

// NameAnalysis is the narrative reading derived from the name numbers.
type NameAnalysis struct {
	Overview   string   `json:"overview"`
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Guidance   string   `json:"guidance"`
}

// NameResponse holds the name numbers, their meanings and the reading.
type NameResponse struct {
	NameNumbers
	FullName    string       `json:"fullName"`
	Expression  Meaning      `json:"expression"`
	SoulUrge    Meaning      `json:"soulUrge"`
	Personality Meaning      `json:"personality"`
	Analysis    NameAnalysis `json:"analysis"`
}
