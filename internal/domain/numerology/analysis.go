package numerology

import (
	"fmt"
	"strings"
)

// BuildProfile computes every number available from the inputs. An empty name
// or date leaves the corresponding numbers at zero.
func BuildProfile(fullName, birthDate string, year int) Profile {
	p := Profile{
		FullName:  strings.TrimSpace(fullName),
		BirthDate: strings.TrimSpace(birthDate),
	}
	if p.BirthDate != "" {
		p.LifePathNumber = LifePath(p.BirthDate)
		if _, day, ok := ParseMonthDay(p.BirthDate); ok {
			p.BirthdayNumber = Birthday(day)
			if year > 0 {
				p.TargetYear = year
				p.PersonalYearNumber = PersonalYear(p.BirthDate, year)
			}
		}
	}
	if p.FullName != "" {
		nums := Name(p.FullName)
		p.ExpressionNumber = nums.Expression
		p.SoulUrgeNumber = nums.SoulUrge
		p.PersonalityNumber = nums.Personality
	}
	if p.LifePathNumber > 0 && p.ExpressionNumber > 0 {
		p.MaturityNumber = Maturity(p.LifePathNumber, p.ExpressionNumber)
	}
	return p
}

// Analyze renders the narrative summary for a profile.
func Analyze(p Profile) string {
	var parts []string
	if p.LifePathNumber > 0 {
		m := MeaningFor(p.LifePathNumber)
		parts = append(parts, fmt.Sprintf(
			"As a Life Path %d you are %s, marked by %s and %s and grounded in the %s element.",
			p.LifePathNumber, displayTitle(m), lower(m.Traits[0]), lower(m.Traits[1]), m.Element,
		))
	}
	if p.ExpressionNumber > 0 {
		m := MeaningFor(p.ExpressionNumber)
		parts = append(parts, fmt.Sprintf(
			"Your Expression %d shows the world %s, with a natural gift for %s.",
			p.ExpressionNumber, displayTitle(m), lower(m.Traits[0]),
		))
	}
	if p.SoulUrgeNumber > 0 {
		m := MeaningFor(p.SoulUrgeNumber)
		parts = append(parts, fmt.Sprintf(
			"Inwardly your Soul Urge %d longs for %s and %s.",
			p.SoulUrgeNumber, lower(m.Traits[0]), lower(m.Traits[1]),
		))
	}
	if p.PersonalityNumber > 0 {
		m := MeaningFor(p.PersonalityNumber)
		parts = append(parts, fmt.Sprintf(
			"Others first meet your Personality %d, %s, carrying %s energy.",
			p.PersonalityNumber, displayTitle(m), strings.ToLower(string(m.Element)),
		))
	}
	if p.PersonalYearNumber > 0 {
		m := MeaningFor(p.PersonalYearNumber)
		parts = append(parts, fmt.Sprintf(
			"%d is a Personal Year %d for you, a season that rewards %s.",
			p.TargetYear, p.PersonalYearNumber, lower(m.Traits[1]),
		))
	}
	return strings.Join(parts, " ")
}

func displayTitle(m Meaning) string {
	if m.MasterTitle != "" {
		return m.MasterTitle
	}
	return m.Title
}

func lower(s string) string {
	return strings.ToLower(s)
}

// AnalyzeName renders the reading for a full name. Strengths draw on the
// Expression, Soul Urge and Personality traits; challenges on the
// Expression element; guidance on all three titles.
func AnalyzeName(fullName string, nums NameNumbers) NameAnalysis {
	expression := MeaningFor(nums.Expression)
	soulUrge := MeaningFor(nums.SoulUrge)
	personality := MeaningFor(nums.Personality)

	firstName := strings.TrimSpace(fullName)
	if fields := strings.Fields(firstName); len(fields) > 0 {
		firstName = fields[0]
	}

	return NameAnalysis{
		Overview: fmt.Sprintf(
			"%s, your name carries powerful numerological vibrations that shape your life path and personality. "+
				"The combination of Expression %d, Soul Urge %d, and Personality %d creates a unique cosmic signature that influences your destiny.",
			firstName, nums.Expression, nums.SoulUrge, nums.Personality,
		),
		Strengths: []string{
			fmt.Sprintf("Natural %s abilities from your Expression Number", lower(expression.Traits[0])),
			fmt.Sprintf("Deep %s desires driving your soul's purpose", lower(soulUrge.Traits[1])),
			fmt.Sprintf("%s personality that others immediately recognize", personality.Traits[0]),
		},
		Challenges: []string{
			fmt.Sprintf("Balancing your %s expression energy", lower(string(expression.Element))),
			"Aligning outer personality with inner soul urge desires",
			"Managing the intensity of multiple numerological influences",
		},
		Guidance: fmt.Sprintf(
			"Focus on integrating your %s expression with your %s soul purpose. "+
				"Your %s personality is the bridge between your inner and outer worlds.",
			lower(displayTitle(expression)), lower(displayTitle(soulUrge)), lower(displayTitle(personality)),
		),
	}
}
