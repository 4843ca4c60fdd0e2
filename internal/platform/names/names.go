// Package names folds provider spellings of people and clubs into the single
// canonical form used for identity keys.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark under NFD.
var foldReplacer = strings.NewReplacer(
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ı", "i",
	"þ", "th", "Þ", "Th",
)

var apostropheReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"`", "'",
	"\"", "'",
	"''", "'",
)

var suffixTokens = map[string]struct{}{
	"II":  {},
	"III": {},
	"IV":  {},
	"Jr":  {},
	"Sr":  {},
}

// Fold strips diacritics and maps the remaining non-ASCII Latin letters to
// their closest ASCII spelling.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return foldReplacer.Replace(out)
}

// Team canonicalizes a club or team display name.
func Team(s string) string {
	return strings.Join(strings.Fields(Fold(s)), " ")
}

// SameTeam reports whether two display names denote the same side.
func SameTeam(a, b string) bool {
	return strings.EqualFold(Team(a), Team(b))
}

// Person cleans a personal name: folded, no dots or commas, apostrophes
// normalized, each token title cased ("Mc" prefixes keep the following capital,
// roman numerals stay upper case), generational suffixes removed.
func Person(s string) string {
	s = Fold(s)
	s = strings.NewReplacer(".", "", ",", "").Replace(s)
	s = apostropheReplacer.Replace(s)

	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = title(token)
		if strings.HasPrefix(token, "Mc") && len(token) > 2 {
			token = "Mc" + strings.ToUpper(token[2:3]) + token[3:]
		}
		switch token {
		case "Ii", "Iii", "Iv":
			token = strings.ToUpper(token)
		}
		out = append(out, token)
	}

	if len(out) > 1 {
		kept := out[:1]
		for _, token := range out[1:] {
			if _, drop := suffixTokens[token]; drop {
				continue
			}
			kept = append(kept, token)
		}
		out = kept
	}

	return strings.Join(out, " ")
}

// FullName joins cleaned first and last names, skipping empty parts.
func FullName(first, last string) string {
	first, last = Person(first), Person(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// title upper-cases the first letter of every run of letters and lower-cases
// the rest, so "o'neill-SMITH" becomes "O'Neill-Smith".
func title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
