package generate

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang selects a built-in alphabet for RandomString.
type Lang uint8

const (
	En Lang = iota
	Ru
)

// DefaultLang is the alphabet used when the caller has no preference.
const DefaultLang = Ru

const (
	enLetters = "abcdefghijklmnopqrstuvwxyz"
	ruLetters = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
)

// ParseLang accepts a language name or BCP 47 tag ("en", "RU", "ru-RU", "en-GB")
// and returns the matching Lang. Only the base language is considered.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalidArgument("lang", "must not be empty")
	}

	tag, err := language.Parse(s)
	if err != nil {
		return 0, invalidArgument("lang", "is not a valid language tag")
	}

	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return En, nil
	case "ru":
		return Ru, nil
	}
	return 0, invalidArgument("lang", "is not supported")
}

// String returns the lowercase ISO 639-1 code of the language.
func (l Lang) String() string {
	switch l {
	case En:
		return "en"
	case Ru:
		return "ru"
	default:
		return "unknown"
	}
}

// Tag returns the language tag used for case mapping of the alphabet.
func (l Lang) Tag() language.Tag {
	if l == En {
		return language.English
	}
	return language.Russian
}

// MarshalText implements encoding.TextMarshaler.
func (l Lang) MarshalText() ([]byte, error) {
	if _, ok := l.letters(); !ok {
		return nil, invalidArgument("lang", "is not supported")
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so Lang can be decoded
// straight from environment variables and config files.
func (l *Lang) UnmarshalText(text []byte) error {
	parsed, err := ParseLang(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Lang) letters() (string, bool) {
	switch l {
	case En:
		return enLetters, true
	case Ru:
		return ruLetters, true
	}
	return "", false
}
