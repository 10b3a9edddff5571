package generate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SlugMaxLength is the longest slug Slug produces.
const SlugMaxLength = 45

// Slug converts a free-text phrase into a lowercase, hyphen-separated token
// made of [a-z0-9-] only, at most SlugMaxLength characters long.
//
// Characters outside that set are dropped (no transliteration), so
// "Hello   World!!" becomes "hello-world" and a purely Cyrillic phrase
// becomes "". Slug never fails.
func Slug(phrase string) string {
	if phrase == "" {
		return ""
	}

	// language.Und gives the root case mapping, independent of any locale.
	lowered := cases.Lower(language.Und).String(phrase)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSpace := false
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case isSlugRune(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}

	// Only ASCII is left, so byte length equals character count.
	s := b.String()
	if len(s) > SlugMaxLength {
		s = strings.TrimSpace(s[:SlugMaxLength])
	}

	return strings.ReplaceAll(s, " ", "-")
}

// SlugPtr is Slug for an optional phrase: nil yields "".
func SlugPtr(phrase *string) string {
	if phrase == nil {
		return ""
	}
	return Slug(*phrase)
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
