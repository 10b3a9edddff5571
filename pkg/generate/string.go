package generate

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const decimalDigits = "0123456789"

// Alphabet returns the alphanumeric alphabet of the language:
// lowercase letters, the same letters uppercased, then the digits 0-9.
func Alphabet(lang Lang) (string, error) {
	letters, ok := lang.letters()
	if !ok {
		return "", invalidArgument("lang", "is not supported")
	}
	return letters + cases.Upper(lang.Tag()).String(letters) + decimalDigits, nil
}

// RandomString returns length characters drawn from the alphanumeric alphabet of lang.
func RandomString(length int, lang Lang) (string, error) {
	alphabet, err := Alphabet(lang)
	if err != nil {
		return "", err
	}
	return RandomStringFromString(length, alphabet)
}

// RandomStringFromString is RandomStringFrom for a character set given as a string.
// The string must be valid UTF-8.
func RandomStringFromString(length int, characterSet string) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}
	if !utf8.ValidString(characterSet) {
		return "", invalidArgument("characterSet", "must be valid UTF-8")
	}

	runes := make([]rune, 0, len(characterSet))
	for _, r := range characterSet {
		runes = append(runes, r)
	}
	return RandomStringFrom(length, runes)
}

// RandomStringFrom returns length characters drawn uniformly, with replacement,
// from the deduplicated characterSet. A nil set yields ErrMissingArgument,
// an empty one ErrInvalidArgument.
//
// Each position reduces 8 random bytes (a uint64) modulo the set size.
// The resulting bias is below 2^-50 for any realistic alphabet and is accepted.
func RandomStringFrom(length int, characterSet []rune) (string, error) {
	if err := validateLength(length); err != nil {
		return "", err
	}
	if characterSet == nil {
		return "", missingArgument("characterSet")
	}

	for _, r := range characterSet {
		if !utf8.ValidRune(r) {
			return "", invalidArgument("characterSet", "must contain only valid runes")
		}
	}

	alphabet := dedupe(characterSet)
	if len(alphabet) == 0 {
		return "", invalidArgument("characterSet", "must not be empty")
	}

	buf := make([]byte, length*8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate random string: %w", err)
	}

	size := uint64(len(alphabet))
	out := make([]rune, length)
	for i := range out {
		v := binary.LittleEndian.Uint64(buf[i*8:])
		out[i] = alphabet[v%size]
	}

	return string(out), nil
}

// dedupe keeps the first occurrence of every rune, preserving order.
func dedupe(set []rune) []rune {
	seen := make(map[rune]struct{}, len(set))
	out := make([]rune, 0, len(set))
	for _, r := range set {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
