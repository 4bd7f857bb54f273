package numerology

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameNumbers groups the three name-derived numbers.
type NameNumbers struct {
	Expression  int `json:"expressionNumber"`
	SoulUrge    int `json:"soulUrgeNumber"`
	Personality int `json:"personalityNumber"`
}

// LetterValue maps an uppercase Latin letter to its Pythagorean digit
// (A,J,S=1 ... I,R=9). Anything else maps to 0.
func LetterValue(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return int(r-'A')%9 + 1
}

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Expression reduces the sum of every letter in the name.
func Expression(fullName string) int {
	return Reduce(sumLetters(fullName, func(rune) bool { return true }))
}

// SoulUrge reduces the sum of the vowels (A, E, I, O, U) in the name.
func SoulUrge(fullName string) int {
	return Reduce(sumLetters(fullName, isVowel))
}

// Personality reduces the sum of the consonants in the name.
func Personality(fullName string) int {
	return Reduce(sumLetters(fullName, func(r rune) bool { return !isVowel(r) }))
}

// Name computes all three name numbers in one pass over the letters.
func Name(fullName string) NameNumbers {
	var all, vowels, consonants int
	for _, r := range letters(fullName) {
		v := LetterValue(r)
		all += v
		if isVowel(r) {
			vowels += v
		} else {
			consonants += v
		}
	}
	return NameNumbers{
		Expression:  Reduce(all),
		SoulUrge:    Reduce(vowels),
		Personality: Reduce(consonants),
	}
}

// NormalizeName folds diacritics, upper-cases and drops everything that is not
// A-Z, so "José  O'Neil" becomes "JOSEONEIL".
func NormalizeName(fullName string) string {
	return string(letters(fullName))
}

func sumLetters(fullName string, keep func(rune) bool) int {
	sum := 0
	for _, r := range letters(fullName) {
		if keep(r) {
			sum += LetterValue(r)
		}
	}
	return sum
}

func letters(fullName string) []rune {
	folded := foldDiacritics(fullName)
	out := make([]rune, 0, len(folded))
	for _, r := range strings.ToUpper(folded) {
		if r >= 'A' && r <= 'Z' {
			out = append(out, r)
		}
	}
	return out
}

func foldDiacritics(s string) string {
	// transform.Chain is stateful, build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
