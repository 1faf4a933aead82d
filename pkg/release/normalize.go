package release

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldTitle returns the comparison key used for library lookups and
// reconciliation grouping: Unicode case-folded and trimmed.
func FoldTitle(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// SearchKey reduces a title to a loose form for fuzzy search ranking.
// Accents and punctuation are dropped, "&" becomes "and", a leading article
// is removed and whitespace is collapsed.
func SearchKey(title string) string {
	s := removeAccents(strings.ToLower(title))
	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ", ":", " ").Replace(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	fields := strings.Fields(b.String())
	if len(fields) > 1 {
		switch fields[0] {
		case "the", "a", "an":
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
